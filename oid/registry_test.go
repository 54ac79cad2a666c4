package oid

import "testing"

func TestDescribe(t *testing.T) {
	tests := map[string]struct {
		oid  string
		want string
	}{
		"CommonName":    {"2.5.4.3", "commonName"},
		"SHA256WithRSA": {"1.2.840.113549.1.1.11", "sha256WithRSAEncryption"},
		"SignedData":    {"1.2.840.113549.1.7.2", "signedData"},
		"Unknown":       {"1.2.3.4.5", ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := Describe(tc.oid); got != tc.want {
				t.Errorf("Describe(%q) = %q, want %q", tc.oid, got, tc.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(Info{OID: "1.2.3", Description: "test"})
	if r.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", r.Count())
	}

	r.Register(Info{OID: "1.2.4", Description: "other", Comment: "example"})
	info, ok := r.Lookup("1.2.4")
	if !ok || info.Description != "other" {
		t.Errorf("Lookup(1.2.4) = %v, %t, want the registered entry", info, ok)
	}
	if _, ok = r.Lookup("9.9.9"); ok {
		t.Errorf("Lookup(9.9.9) found an entry, want none")
	}

	// replacing an entry does not grow the registry
	r.Register(Info{OID: "1.2.4", Description: "replaced"})
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}

	// All returns a copy
	r.All()["1.2.3"] = Info{OID: "1.2.3", Description: "mutated"}
	if info, _ := r.Lookup("1.2.3"); info.Description != "test" {
		t.Errorf("Lookup(1.2.3) = %v, mutation of All() leaked into the registry", info)
	}

	// the zero value is usable
	var zero Registry
	zero.Register(Info{OID: "1.2.5", Description: "zero"})
	if zero.Count() != 1 {
		t.Errorf("Count() = %d, want 1", zero.Count())
	}
}
