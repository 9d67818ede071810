// Package fingerprint derives short content identifiers for reports.
package fingerprint

import (
	"encoding/hex"
	"encoding/json"

	"golang.org/x/crypto/blake2b"
)

// Size is the number of digest bytes kept; IDs are twice as many hex chars.
const Size = 10

// Of returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to Size bytes.
func Of(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:Size])
}

// JSON fingerprints the JSON encoding of v.
func JSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return Of(b), nil
}
