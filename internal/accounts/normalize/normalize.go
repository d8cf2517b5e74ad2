// Package accounts provides account management functionality.
// This file defines normalization helpers shared with duplicate matching.
package normalize

import (
	"net/url"
	"strings"
)

// legalSuffixes are trailing company-form tokens ignored when comparing names.
var legalSuffixes = map[string]struct{}{
	"inc":  {},
	"llc":  {},
	"ltd":  {},
	"corp": {},
	"co":   {},
	"lp":   {},
	"llp":  {},
	"pllc": {},
}

// NormalizeName lowercases a company name, strips punctuation and a trailing
// legal suffix, and collapses whitespace. Used for the name_normalized column
// and for duplicate comparison.
func NormalizeName(name string) string {
	lowered := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	if len(fields) > 1 {
		if _, ok := legalSuffixes[fields[len(fields)-1]]; ok {
			fields = fields[:len(fields)-1]
		}
	}

	return strings.Join(fields, " ")
}

// ExtractDomain pulls the registrable host out of a website value.
// Returns "" when no host can be determined.
func ExtractDomain(website string) string {
	trimmed := strings.TrimSpace(strings.ToLower(website))
	if trimmed == "" {
		return ""
	}

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return ""
	}

	host := parsed.Host
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	host = strings.TrimPrefix(host, "www.")

	if !strings.Contains(host, ".") {
		return ""
	}

	return host
}
