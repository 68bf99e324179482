package tracker

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateCode returns a uniformly random 4-digit confirmation code
// ("1000".."9999"). The short length is acceptable because codes are
// single-use, invalidated on success and scoped to one tracker.
func GenerateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no meaningful recovery for a request-scoped code.
		panic(fmt.Sprintf("tracker: confirmation code generation failed: %v", err))
	}
	return fmt.Sprintf("%04d", n.Int64()+1000)
}
