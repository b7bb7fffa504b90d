// Package text provides string helpers: case conversion, accent-insensitive
// normalization, slugs, base64, a short string hash, identifiers and URL
// joining.
package text
