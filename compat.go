// Package ethcompat converts values between go-ethereum's native types and
// their wire representation in package wire.
//
//	// from wire to go-ethereum
//	hash := ethcompat.Eth[common.Hash](h256)
//
//	// from go-ethereum to wire
//	addr := ethcompat.Wire[wire.Address](common.HexToAddress("0xdeadbeefdeadbeefdeadbeefdeadbeef00000000"))
//
//	// integers are supported
//	max := ethcompat.Wire[wire.U256](new(uint256.Int).SetAllOne())
//
// The set of convertible pairings is closed: each wire type declares its
// go-ethereum counterpart through its Eth and SetEth methods, and the generic
// functions here resolve against those declarations at compile time. A
// conversion outside the table is a build error, never a runtime failure, and
// every conversion inside the table is total: no validation, no arithmetic,
// no error path.
package ethcompat

// Eth converts a wire value into its go-ethereum counterpart. The destination
// type is named at the call site:
//
//	nonce := ethcompat.Eth[types.BlockNonce](h64)
func Eth[E any, W interface{ Eth() E }](w W) E {
	return w.Eth()
}

// Wire converts a go-ethereum value into the wire type named at the call
// site:
//
//	h := ethcompat.Wire[wire.H256](common.Hash{})
func Wire[W, E any, PW interface {
	*W
	SetEth(E)
}](e E) W {
	var w W
	PW(&w).SetEth(e)

	return w
}
