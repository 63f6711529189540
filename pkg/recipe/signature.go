package recipe

import "strings"

// signatureMaxLen keeps the signature inside common relational index-key
// limits (191 works on MySQL 5.7+).
const signatureMaxLen = 191

// Signature derives the deduplication key for a recipe: title, desc and img
// trimmed, lower-cased and joined with "|", truncated to 191 bytes. Equal
// content always yields an equal key, so a re-suggested recipe with identical
// fields collapses into the existing recipes row. That merge is intentional,
// even when the caller meant two generations to be distinct entries.
func Signature(title, desc, img string) string {
	sig := strings.ToLower(strings.TrimSpace(title)) + "|" +
		strings.ToLower(strings.TrimSpace(desc)) + "|" +
		strings.ToLower(strings.TrimSpace(img))
	if len(sig) > signatureMaxLen {
		sig = sig[:signatureMaxLen]
	}
	return sig
}
