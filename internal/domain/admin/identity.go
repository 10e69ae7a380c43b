package admin

import (
	"strconv"
	"strings"
)

// UnknownUserKey is the list key base for users without any identity field.
const UnknownUserKey = "unknown-user"

// IdentityKey derives a stable key for u. Sources are tried in order and the first
// non-empty one wins, prefixed with its source name. The display name is never used
// because it is mutable. ok is false when no source is present.
func IdentityKey(u User) (key string, ok bool) {
	candidates := []struct {
		prefix string
		value  string
	}{
		{"clerk", strings.TrimSpace(u.ClerkID)},
		{"id", strings.TrimSpace(string(u.ID))},
		{"user_id", strings.TrimSpace(string(u.UserID))},
		{"email", strings.ToLower(strings.TrimSpace(u.Email))},
		{"username", strings.ToLower(strings.TrimSpace(u.Username))},
	}
	for _, c := range candidates {
		if c.value != "" {
			return c.prefix + ":" + c.value, true
		}
	}
	return "", false
}

// ListKeys returns one unique key per user, in order. Users sharing an identity
// key get "#2", "#3", ... suffixes on later occurrences.
func ListKeys(users []User) []string {
	keys := make([]string, len(users))
	seen := make(map[string]int, len(users))
	for i, u := range users {
		base, ok := IdentityKey(u)
		if !ok {
			base = UnknownUserKey
		}
		seen[base]++
		if n := seen[base]; n > 1 {
			keys[i] = base + "#" + strconv.Itoa(n)
			continue
		}
		keys[i] = base
	}
	return keys
}
