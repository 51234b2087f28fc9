package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/aatifsyed/go-ethcompat"
	"github.com/aatifsyed/go-ethcompat/wire"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

func main() {
	kind := flag.String("kind", "hash", "Kind of value to convert: address, hash, or u256")
	value := flag.String("value", "", "Hex value to convert (0x-prefixed)")

	flag.Parse()

	if len(*value) == 0 {
		flag.Usage()
		return
	}

	switch *kind {
	case "address":
		addr := common.HexToAddress(*value)
		w := ethcompat.Wire[wire.Address](addr)
		fmt.Printf("native: %s\nwire:   %s\n", addr.Hex(), w.Hex())

	case "hash":
		hash := common.HexToHash(*value)
		w := ethcompat.Wire[wire.H256](hash)
		fmt.Printf("native: %s\nwire:   %s\n", hash.Hex(), w.Hex())

	case "u256":
		z, err := uint256.FromHex(*value)
		if err != nil {
			log.Fatal(err)
		}

		w := ethcompat.Wire[wire.U256](z)
		fmt.Printf("native:   %s\nwire:     %s\nwire (le): %s\n", z.Hex(), w.Hex(), hexutil.Encode(w.BytesLE()))

	default:
		log.Fatalf("unknown kind %q", *kind)
	}
}
