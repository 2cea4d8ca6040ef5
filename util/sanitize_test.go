package util

import "testing"

func TestSanitizeTenantName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces become underscores", "acme corp", "acme_corp"},
		{"uppercase is lowered", "ACME-2", "acme-2"},
		{"leading and trailing whitespace trimmed", "  acme  ", "acme"},
		{"allowed characters pass through", "abc_123-xyz", "abc_123-xyz"},
		{"punctuation replaced", "a.b/c!d", "a_b_c_d"},
		{"non-ascii runes replaced one for one", "café", "caf_"},
		{"empty input", "", ""},
		{"whitespace only", "   ", ""},
		{"inner whitespace kept as underscore", "a  b", "a__b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTenantName(tt.in); got != tt.want {
				t.Errorf("SanitizeTenantName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeTenantNameIsDeterministic(t *testing.T) {
	in := "Acme Corp / EU"
	first := SanitizeTenantName(in)
	for i := 0; i < 10; i++ {
		if got := SanitizeTenantName(in); got != first {
			t.Fatalf("sanitization not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCollectionNameForTenant(t *testing.T) {
	if got := CollectionNameForTenant("acme corp"); got != "org_acme_corp" {
		t.Errorf("CollectionNameForTenant(\"acme corp\") = %q, want %q", got, "org_acme_corp")
	}
	if got := CollectionNameForTenant("ACME-2"); got != "org_acme-2" {
		t.Errorf("CollectionNameForTenant(\"ACME-2\") = %q, want %q", got, "org_acme-2")
	}
}
