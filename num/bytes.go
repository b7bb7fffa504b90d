package num

import (
	"math"
	"strconv"
	"strings"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders a byte count with a binary unit and at most decimals
// fraction digits, trailing zeros removed: 1045 gives "1.02KB". Zero gives
// "0 Bytes".
func FormatBytes(bytes float64, decimals ...int) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	dm := 2
	if len(decimals) > 0 {
		dm = max(0, decimals[0])
	}
	sign := ""
	if bytes < 0 {
		sign, bytes = "-", -bytes
	}
	i := 0
	for bytes >= 1024 && i < len(byteUnits)-1 {
		bytes /= 1024
		i++
	}
	scale := math.Pow(10, float64(dm))
	v := math.Round(bytes*scale) / scale
	return sign + strconv.FormatFloat(v, 'f', -1, 64) + byteUnits[i]
}

// ParseSize parses a human-readable size string (e.g. "10MB", "1.5GB",
// "512") into bytes. Returns defaultBytes if the string cannot be parsed.
func ParseSize(s string, defaultBytes int64) int64 {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return defaultBytes
	}

	var multiplier float64 = 1
	for i := len(byteUnits) - 1; i > 0; i-- {
		if strings.HasSuffix(s, byteUnits[i]) {
			multiplier = math.Pow(1024, float64(i))
			s = s[:len(s)-len(byteUnits[i])]
			break
		}
	}
	if multiplier == 1 {
		s = strings.TrimSuffix(s, "B")
	}

	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || val < 0 {
		return defaultBytes
	}
	return int64(val * multiplier)
}
