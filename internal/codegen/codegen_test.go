package codegen

import (
	"strings"
	"testing"
)

func TestNewCodeFormat(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := NewCode()
		if len(code) != CodeLength {
			t.Fatalf("len(%q) = %d, want %d", code, len(code), CodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q, not in alphabet", code, r)
			}
		}
		if strings.ContainsAny(code, "0O1I") {
			t.Fatalf("code %q contains a confusable character", code)
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{" 7K3MXQ ", "7K3MXQ"},
		{"7k3mxq", "7K3MXQ"},
		{"\tabcdef\n", "ABCDEF"},
		{"ABCDEF", "ABCDEF"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := Validate("7K3MXQ"); err != nil {
		t.Fatalf("Validate(7K3MXQ) = %v, want nil", err)
	}
	bad := []string{"", "ABC", "ABCDEFG", "ABCDE0", "ABCDEI", "abcdef"}
	for _, code := range bad {
		if err := Validate(code); err == nil {
			t.Fatalf("Validate(%q) = nil, want error", code)
		}
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID("act"), NewID("act")
	if a == b {
		t.Fatal("NewID returned duplicate tokens")
	}
	if !strings.HasPrefix(a, "act_") {
		t.Fatalf("NewID prefix missing: %q", a)
	}
	if NewID("") == "" {
		t.Fatal("NewID(\"\") returned empty token")
	}
}
