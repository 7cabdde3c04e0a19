// Package security holds small credential helpers shared by the HTTP
// layer and the operator CLI.
package security

import (
	"crypto/rand"
	"math/big"
)

// passwordAlphabet omits lookalike characters (I, O, l, 0, 1) so a
// temporary password read over the phone survives transcription.
const passwordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// MinTemporaryPasswordLength is the floor enforced by TemporaryPassword.
const MinTemporaryPasswordLength = 8

// TemporaryPassword returns a cryptographically random password of the
// requested length, raised to MinTemporaryPasswordLength when shorter.
func TemporaryPassword(length int) (string, error) {
	if length < MinTemporaryPasswordLength {
		length = MinTemporaryPasswordLength
	}

	limit := big.NewInt(int64(len(passwordAlphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = passwordAlphabet[position.Int64()]
	}

	return string(value), nil
}
