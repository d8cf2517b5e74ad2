package phone

import "testing"

func TestNormalizeE164FormatsUSNumbers(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"(512) 555-0100", "+15125550100"},
		{"512-555-0100", "+15125550100"},
		{"+1 512 555 0100", "+15125550100"},
	}
	for _, tc := range cases {
		if got := NormalizeE164(tc.in); got != tc.want {
			t.Fatalf("NormalizeE164(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeE164ReturnsTrimmedInputWhenUnparseable(t *testing.T) {
	if got := NormalizeE164("  not a number  "); got != "not a number" {
		t.Fatalf("NormalizeE164 = %q, want trimmed original", got)
	}
	if got := NormalizeE164(""); got != "" {
		t.Fatalf("NormalizeE164 of empty = %q, want empty", got)
	}
}

func TestIsValid(t *testing.T) {
	if !IsValid("(512) 555-0100") {
		t.Fatal("expected a well-formed US number to be valid")
	}
	if IsValid("") {
		t.Fatal("expected empty input to be invalid")
	}
	if IsValid("12345") {
		t.Fatal("expected a short digit string to be invalid")
	}
}
