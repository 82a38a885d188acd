package emoji

import (
	"errors"
	"slices"
	"testing"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name    string
		runes   []rune
		wantKey string
		wantRaw string
	}{
		{"single", []rune{0x1F600}, "1f600", "1f600"},
		{"selector dropped", []rune{0x2764, 0xFE0F}, "2764", "2764-fe0f"},
		{"inner selector kept", []rune{'#', 0xFE0F, 0x20E3}, "23-fe0f-20e3", "23-fe0f-20e3"},
		{"only trailing selector dropped", []rune{'#', 0xFE0F, 0x20E3, 0xFE0F}, "23-fe0f-20e3", "23-fe0f-20e3-fe0f"},
		{"skin tone", []rune{0x1F44B, 0x1F3FD}, "1f44b-1f3fd", "1f44b-1f3fd"},
		{
			"family",
			[]rune{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467},
			"1f468-200d-1f469-200d-1f467",
			"1f468-200d-1f469-200d-1f467",
		},
		{"selector kept with joiner", []rune{0x1F3F3, 0xFE0F, 0x200D, 0x1F308}, "1f3f3-fe0f-200d-1f308", "1f3f3-fe0f-200d-1f308"},
		{"empty", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.runes); got != tt.wantKey {
				t.Errorf("Key(%U) = %q, want %q", tt.runes, got, tt.wantKey)
			}
			if got := RawKey(tt.runes); got != tt.wantRaw {
				t.Errorf("RawKey(%U) = %q, want %q", tt.runes, got, tt.wantRaw)
			}
		})
	}
}

func TestKeyDeterministic(t *testing.T) {
	runes := []rune{0x1F9D1, 0x1F3FD, 0x200D, 0x1F4BB}
	first := Key(runes)
	for range 10 {
		if got := Key(runes); got != first {
			t.Fatalf("Key changed between calls: %q then %q", first, got)
		}
	}
}

func TestLookupKeys(t *testing.T) {
	if got := LookupKeys([]rune{0x1F600}); !slices.Equal(got, []string{"1f600"}) {
		t.Errorf("LookupKeys(simple) = %v", got)
	}
	got := LookupKeys([]rune{0x2764, 0xFE0F})
	if !slices.Equal(got, []string{"2764-fe0f", "2764"}) {
		t.Errorf("LookupKeys(heart) = %v, want raw spelling first", got)
	}
	got = LookupKeys([]rune{'#', 0xFE0F, 0x20E3})
	if !slices.Equal(got, []string{"23-fe0f-20e3", "23-20e3"}) {
		t.Errorf("LookupKeys(keycap) = %v, want selector-free spelling last", got)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key     string
		want    []rune
		wantErr bool
	}{
		{"1f600", []rune{0x1F600}, false},
		{"1f468-200d-1f469", []rune{0x1F468, 0x200D, 0x1F469}, false},
		{"23-20e3", []rune{'#', 0x20E3}, false},
		{"1F600", []rune{0x1F600}, false},
		{"", nil, true},
		{"1f600-", nil, true},
		{"zz", nil, true},
		{"0x1f600", nil, true},
		{"d800", nil, true},
		{"110000", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := ParseKey(tt.key)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidKey) {
					t.Errorf("ParseKey(%q) error = %v, want ErrInvalidKey", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", tt.key, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseKey(%q) = %U, want %U", tt.key, got, tt.want)
			}
			if Key(got) != RawKey(got) || RawKey(got) == "" {
				t.Errorf("round trip of %q gave %q", tt.key, RawKey(got))
			}
		})
	}
}
