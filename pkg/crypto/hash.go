// Package crypto provides the hashing and signing primitives the ledger
// uses to link blocks and authenticate transactions.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

var hexNibble = [16]string{
	"0000", "0001", "0010", "0011",
	"0100", "0101", "0110", "0111",
	"1000", "1001", "1010", "1011",
	"1100", "1101", "1110", "1111",
}

// Hash canonicalizes each argument as JSON, joins the results with '^', and
// returns the lowercase-hex SHA-256 digest of that string. Argument order
// is significant: Hash(a, b) and Hash(b, a) are different digests.
func Hash(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		b, err := json.Marshal(arg)
		if err != nil {
			// Every argument passed through this function is an internal
			// domain type with no cyclic references, so this cannot fail
			// in practice; surface it as a fixed digest of the error text
			// rather than threading an error return through every caller.
			parts[i] = fmt.Sprintf("!marshal-error:%v", err)
			continue
		}
		parts[i] = string(b)
	}
	joined := strings.Join(parts, "^")
	sum := sha256.Sum256([]byte(joined))
	return hex.EncodeToString(sum[:])
}

// HexToBinary expands a hex string (upper or lower case) into its binary representation,
// one hex digit at a time, four bits per digit. Used to inspect the leading
// bits of a block hash against the proof-of-work difficulty.
func HexToBinary(hexStr string) string {
	var b strings.Builder
	b.Grow(len(hexStr) * 4)
	for _, c := range hexStr {
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		case c >= 'a' && c <= 'f':
			v = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v = int(c-'A') + 10
		default:
			// Non-hex input has no binary expansion; emit nothing for
			// this character rather than guessing.
			continue
		}
		b.WriteString(hexNibble[v])
	}
	return b.String()
}
