// Package admin contains the payload types of the admin API and the pure helpers
// used to present them.
package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// RootResponse is the body of GET /admin. Only its success matters for gating.
type RootResponse struct {
	Status  string `json:"status,omitempty"`
	Section string `json:"section,omitempty"`
}

// Health is the body of GET /admin/health.
type Health struct {
	Status        string   `json:"status,omitempty"`
	DB            string   `json:"db,omitempty"`
	StartedAt     string   `json:"started_at,omitempty"`
	CheckedAt     string   `json:"checked_at,omitempty"`
	UptimeSeconds *float64 `json:"uptime_seconds,omitempty"`
}

// Uptime returns the reported uptime in seconds, zero when absent.
func (h Health) Uptime() float64 {
	if h.UptimeSeconds == nil {
		return 0
	}
	return *h.UptimeSeconds
}

// User is one entry of GET /admin/users. Every field is optional; no field is a
// locally authoritative identity (see IdentityKey).
type User struct {
	ClerkID   string     `json:"clerk_id,omitempty"`
	ID        FlexibleID `json:"id,omitempty"`
	UserID    FlexibleID `json:"user_id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Username  string     `json:"username,omitempty"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Role      string     `json:"role,omitempty"`
	IsActive  bool       `json:"is_active,omitempty"`
}

// UnmarshalJSON decodes a user record field by field. A field whose JSON type
// does not match is coerced where that is unambiguous and left empty otherwise,
// so one odd record never fails the whole list. A non-object record decodes to
// the zero User.
func (u *User) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		*u = User{}
		return nil //nolint:nilerr // non-object records are tolerated
	}

	*u = User{
		ClerkID:   looseString(fields["clerk_id"]),
		ID:        looseID(fields["id"]),
		UserID:    looseID(fields["user_id"]),
		Name:      looseString(fields["name"]),
		Email:     looseString(fields["email"]),
		Username:  looseString(fields["username"]),
		FirstName: looseString(fields["first_name"]),
		LastName:  looseString(fields["last_name"]),
		Role:      looseString(fields["role"]),
		IsActive:  truthy(fields["is_active"]),
	}
	return nil
}

// looseString keeps strings, renders numbers and booleans, and drops
// objects, arrays and null.
func looseString(raw json.RawMessage) string {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64, bool:
		return scalarString(raw)
	default:
		return ""
	}
}

func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if raw[0] == 't' || raw[0] == 'f' {
		return string(raw)
	}
	return formatNumber(json.Number(raw))
}

func looseID(raw json.RawMessage) FlexibleID {
	var id FlexibleID
	if len(raw) == 0 || id.UnmarshalJSON(raw) != nil {
		return ""
	}
	return id
}

// truthy follows the usual JSON truthiness: false, 0, "", null and absent
// are false; everything else is true.
func truthy(raw json.RawMessage) bool {
	var v any
	if len(raw) == 0 || json.Unmarshal(raw, &v) != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0 && !math.IsNaN(t)
	case string:
		return t != ""
	default:
		return true
	}
}

// FlexibleID holds an identifier the backend may send as a JSON string or number.
// Numbers are kept in their shortest decimal form.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		*f = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id: %w", err)
	}
	*f = FlexibleID(formatNumber(n))
	return nil
}

func formatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	v, err := n.Float64()
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return n.String()
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
