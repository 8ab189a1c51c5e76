package protocol

import "strings"

// forbiddenKeyChars keeps a key from escaping the storage root or
// splitting into extra tokens.
const forbiddenKeyChars = `/\. `

// ValidKey reports whether key is safe to use as a storage location name.
func ValidKey(key string) bool {
	if key == "" {
		return false
	}
	return !strings.ContainsAny(key, forbiddenKeyChars)
}
