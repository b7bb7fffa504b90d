// Package num provides numeric helpers: clamping, stepping, lenient parsing
// and byte-size formatting.
package num
