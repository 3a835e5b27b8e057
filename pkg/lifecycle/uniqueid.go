package lifecycle

import (
	"crypto/rand"
)

const (
	codePrefix   = "WD-"
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 8
)

// NewOrderCode returns a short human-facing reference like "WD-7KQ2M9XA".
// The alphabet omits easily confused characters (0/O, 1/I).
func NewOrderCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return codePrefix + string(buf), nil
}
