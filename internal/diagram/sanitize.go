package diagram

import "strings"

// Sanitize maps a cloud resource id to a Mermaid-safe token by
// replacing every hyphen with an underscore. It is deterministic and
// idempotent. It does NOT deduplicate: two raw ids that sanitize to
// the same token will merge into one node in the rendered diagram.
func Sanitize(raw string) string {
	return strings.ReplaceAll(raw, "-", "_")
}
