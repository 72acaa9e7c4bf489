// Package email implements the syntactic address check applied on the signup
// path. The check is offline only: no MX lookup, no deliverability probing.
package email

import (
	"regexp"
	"strings"
)

var (
	localPattern  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+$`)
	domainPattern = regexp.MustCompile(`^[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// Valid reports whether s is an acceptable student email address. Rules are
// applied in order and the first failure rejects:
//
//  1. non-empty, not whitespace-only
//  2. exactly one @
//  3. local part: non-empty, no leading/trailing dot, no "..", charset
//     [A-Za-z0-9._%+-]
//  4. domain: non-empty, at least one dot, no leading/trailing "." or "-",
//     no ".."
//  5. every domain label non-empty and not hyphen-edged
//  6. domain ends in an alphabetic TLD of length >= 2
//
// Subaddressed locals (user+tag) are valid; percent-encoding them on the wire
// is the transport's problem, not ours.
func Valid(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if strings.Count(s, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(s, "@")

	if local == "" {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.Contains(local, "..") {
		return false
	}
	if !localPattern.MatchString(local) {
		return false
	}

	if domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") ||
		strings.HasPrefix(domain, "-") || strings.HasSuffix(domain, "-") {
		return false
	}
	if strings.Contains(domain, "..") {
		return false
	}
	for _, label := range strings.Split(domain, ".") {
		if label == "" {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return domainPattern.MatchString(domain)
}
