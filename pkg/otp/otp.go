package otp

import (
	"crypto/rand"
	"math/big"
)

const (
	digits = "0123456789"

	// CodeLength is the number of digits in a verification code.
	CodeLength = 6
)

// GenerateCode returns a uniformly random fixed-length digit string.
func GenerateCode() string {
	b := make([]byte, CodeLength)
	max := big.NewInt(int64(len(digits)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken
			panic(err)
		}
		b[i] = digits[n.Int64()]
	}
	return string(b)
}
