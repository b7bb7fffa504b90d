package text

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf16"
)

var nonBase64 = regexp.MustCompile(`[^A-Za-z0-9+/=]`)

// Base64Encode encodes the UTF-8 bytes of s with the standard, padded
// alphabet.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode decodes standard base64. Characters outside the alphabet are
// ignored and padding is optional.
func Base64Decode(s string) (string, error) {
	cleaned := strings.TrimRight(nonBase64.ReplaceAllString(s, ""), "=")
	b, err := base64.RawStdEncoding.DecodeString(cleaned)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Hash returns a short, non-cryptographic hash of s: the 32-bit
// "h = h*31 + c" string hash over UTF-16 code units, written in decimal and
// base64 encoded without padding.
func Hash(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}
	return strings.TrimRight(Base64Encode(strconv.Itoa(int(h))), "=")
}
