// Package validation collects field-level constraint violations into a map
// keyed by field name, so callers can report every broken field at once.
package validation

import (
	"sort"
	"strings"
	"time"
)

type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Fields returns the violated field names, sorted for stable messages.
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func NonNegativeCents(field string, cents int64, v Violations) {
	if cents < 0 {
		v[field] = "must_not_be_negative"
	}
}

func NonNegativeInt(field string, n int, v Violations) {
	if n < 0 {
		v[field] = "must_not_be_negative"
	}
}

// OneOf requires value to be a member of allowed.
func OneOf(field, value string, v Violations, allowed ...string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v[field] = "invalid_value"
}

// NotBefore requires t to be on or after min.
func NotBefore(field string, t, min time.Time, v Violations) {
	if t.Before(min) {
		v[field] = "out_of_order"
	}
}
