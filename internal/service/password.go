// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only reads the first 72 bytes; longer input is cut there instead of
// being rejected.
const maxPasswordBytes = 72

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

func passwordBytes(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}

// clampCost keeps cost inside bcrypt's accepted range.
func clampCost(cost int) int {
	if cost < bcrypt.MinCost {
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		return bcrypt.MaxCost
	}
	return cost
}

// HashPassword returns the bcrypt hash of password.
func (c *Credentials) HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword(passwordBytes(password), c.cost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword returns nil when password matches hash.
func (c *Credentials) ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), passwordBytes(password))
}

// CompareDummy spends the same bcrypt work as ComparePassword against a hash
// no password matches. Login uses it for unknown emails.
func (c *Credentials) CompareDummy(password string) {
	c.dummyOnce.Do(func() {
		h, err := bcryptGenerateFromPassword([]byte("no-such-user"), c.cost)
		if err == nil {
			c.dummyHash = h
		}
	})
	if c.dummyHash == nil {
		return
	}
	_ = bcryptCompareHashAndPassword(c.dummyHash, passwordBytes(password))
}
