package tenderwatch

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Fingerprint computes a stable content fingerprint over the semantically
// meaningful fields of a tender: title, organization, detail URL,
// publication date, deadline date and excerpt, in that order.
//
// Each field is trimmed and length-prefixed before hashing so that no
// combination of field boundaries can collide with a different combination
// of values. The digest is used purely as a change-detection token at the
// persistence boundary, never as a record identifier.
func Fingerprint(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		p = strings.TrimSpace(p)
		fmt.Fprintf(h, "%d:", len(p))
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
