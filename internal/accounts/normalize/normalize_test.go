package normalize

import "testing"

func TestNormalizeNameStripsCaseAndPunctuation(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Steel", "acme steel"},
		{"ACME  Steel", "acme steel"},
		{"Acme, Steel & Sons!", "acme steel sons"},
		{"Acme-Steel", "acme steel"},
		{"  Acme Steel  ", "acme steel"},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNameDropsTrailingLegalSuffix(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Acme Steel Inc", "acme steel"},
		{"Acme Steel, Inc.", "acme steel"},
		{"Acme Steel LLC", "acme steel"},
		{"Acme Steel Ltd", "acme steel"},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNameKeepsSingleWordSuffixLookalike(t *testing.T) {
	// A name that IS a legal-suffix token stays intact.
	if got := NormalizeName("Inc"); got != "inc" {
		t.Fatalf("NormalizeName(%q) = %q, want %q", "Inc", got, "inc")
	}
}

func TestExtractDomainHandlesSchemesAndWWW(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://www.acmesteel.com", "acmesteel.com"},
		{"http://acmesteel.com/contact", "acmesteel.com"},
		{"acmesteel.com", "acmesteel.com"},
		{"WWW.AcmeSteel.Com", "acmesteel.com"},
		{"https://acmesteel.com:8080", "acmesteel.com"},
	}
	for _, tc := range cases {
		if got := ExtractDomain(tc.in); got != tc.want {
			t.Fatalf("ExtractDomain(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractDomainRejectsNonDomains(t *testing.T) {
	for _, in := range []string{"", "   ", "localhost", "not a url"} {
		if got := ExtractDomain(in); got != "" {
			t.Fatalf("ExtractDomain(%q) = %q, want empty", in, got)
		}
	}
}
