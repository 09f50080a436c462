// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRandomString(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)

	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[n.Int64()]
	}

	return string(b), nil
}

// GenerateOrderNumber produces a globally unique, human-legible order
// number. Uniqueness comes from the UUID fragment; the date prefix is
// for support staff reading invoices.
func GenerateOrderNumber() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
