package token

import (
	"crypto/rand"
	"math/big"
)

const (
	// ShareCodeLength is the length of the public code embedded in share URLs
	ShareCodeLength = 8
	// InviteCodeLength is the length of the public code embedded in collaboration invite URLs
	InviteCodeLength = 10
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// New returns a random code of the given length, drawn uniformly from [A-Za-z0-9]
func New(length int) (string, error) {
	code := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = alphabet[n.Int64()]
	}
	return string(code), nil
}
