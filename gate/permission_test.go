package gate_test

import (
	"testing"

	"github.com/rentdesk/rentdesk/gate"
)

func TestPermissionMatches(t *testing.T) {
	cases := []struct {
		granted   gate.Permission
		requested gate.Permission
		want      bool
	}{
		{"payment:view", "payment:view", true},
		{"payment:view", "payment:create", false},
		{"payment:view", "invoice:view", false},
		{"payment:*", "payment:delete", true},
		{"payment:*", "invoice:view", false},
		{"*:*", "anything:at_all", true},
		{"malformed", "payment:view", false},
	}
	for _, c := range cases {
		if got := c.granted.Matches(c.requested); got != c.want {
			t.Errorf("%q.Matches(%q) = %v, want %v", c.granted, c.requested, got, c.want)
		}
	}
}

func TestPermissionParse(t *testing.T) {
	res, act := gate.NewPermission("invoice", gate.ActionList).Parse()
	if res != "invoice" || act != gate.ActionList {
		t.Errorf("got (%q, %q)", res, act)
	}
	res, act = gate.Permission("junk").Parse()
	if res != "" || act != "" {
		t.Errorf("malformed permission parsed to (%q, %q)", res, act)
	}
}
