package language

import "testing"

func TestByCode(t *testing.T) {
	tests := []struct {
		code     string
		wantName string
		wantOK   bool
	}{
		{"es", "Spanish", true},
		{"vi", "Vietnamese", true},
		{"en", "English", true},
		{"xx", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			l, ok := ByCode(tt.code)
			if ok != tt.wantOK {
				t.Fatalf("ByCode(%q) ok = %v, want %v", tt.code, ok, tt.wantOK)
			}
			if ok && l.Name != tt.wantName {
				t.Errorf("ByCode(%q).Name = %q, want %q", tt.code, l.Name, tt.wantName)
			}
		})
	}
}

func TestAllIsCopy(t *testing.T) {
	a := All()
	if len(a) == 0 {
		t.Fatal("catalog should not be empty")
	}
	a[0].Name = "mutated"

	b := All()
	if b[0].Name == "mutated" {
		t.Error("All() should return a copy, not the backing slice")
	}
}
