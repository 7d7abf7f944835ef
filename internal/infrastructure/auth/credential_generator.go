package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
)

const (
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	passwordLength   = 12
)

// CredentialGeneratorImpl implements domain.CredentialGenerator using
// crypto/rand over a 62-symbol alphabet.
type CredentialGeneratorImpl struct {
	length int
}

// NewCredentialGenerator creates a new credential generator
func NewCredentialGenerator() domain.CredentialGenerator {
	return &CredentialGeneratorImpl{length: passwordLength}
}

// Generate implements domain.CredentialGenerator
func (g *CredentialGeneratorImpl) Generate() (string, error) {
	buf := make([]byte, g.length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}
	return string(buf), nil
}
