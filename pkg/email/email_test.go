package email

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValid_RejectsMalformedAddresses(t *testing.T) {
	cases := map[string]string{
		"empty":                  "",
		"whitespace only":        "   ",
		"no at sign":             "invalidemail",
		"missing domain":         "invalid@",
		"missing local":          "@mergington.edu",
		"two at signs":           "user@@mergington.edu",
		"no tld":                 "invalid@domain",
		"space in local":         "invalid email@domain.com",
		"double dot local":       "user..name@domain.com",
		"leading dot local":      ".user@domain.com",
		"trailing dot local":     "user.@domain.com",
		"illegal local char":     "user!name@domain.com",
		"leading dot domain":     "user@.domain.com",
		"trailing dot domain":    "user@domain.com.",
		"leading hyphen domain":  "user@-domain.com",
		"trailing hyphen domain": "user@domain.com-",
		"double dot domain":      "user@domain..com",
		"hyphen-edged label":     "user@sub-.domain.com",
		"single letter tld":      "user@domain.c",
		"numeric tld":            "user@domain.123",
	}
	for name, addr := range cases {
		t.Run(name, func(t *testing.T) {
			require.False(t, Valid(addr), "expected %q to be rejected", addr)
		})
	}
}

func TestValid_AcceptsWellFormedAddresses(t *testing.T) {
	cases := []string{
		"newuser@mergington.edu",
		"user.name@mergington.edu",
		"user_name@mergington.edu",
		"user123@mergington.edu",
		"a@mergington.edu",
		"user+tag@mergington.edu",
		"user%alias@mergington.edu",
		"first.last@students.mergington.edu",
		"kid@sub-domain.mergington.edu",
	}
	for _, addr := range cases {
		require.True(t, Valid(addr), "expected %q to be accepted", addr)
	}
}
