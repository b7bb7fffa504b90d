package text

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
)

// Alphanumeric is the default alphabet of RandomString.
const Alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns n characters drawn from alphabet, or from
// Alphanumeric when alphabet is empty. It is not suitable for secrets.
func RandomString(n int, alphabet ...string) string {
	chars := []rune(Alphanumeric)
	if len(alphabet) > 0 && alphabet[0] != "" {
		chars = []rune(alphabet[0])
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(chars[rand.IntN(len(chars))])
	}
	return b.String()
}

// UUIDv4 returns a random RFC 4122 version 4 UUID in its canonical form.
func UUIDv4() string {
	return uuid.NewString()
}

// IsUUID reports whether s is a valid, non-nil UUID.
func IsUUID(s string) bool {
	id, err := uuid.Parse(strings.TrimSpace(s))
	return err == nil && id != uuid.Nil
}
