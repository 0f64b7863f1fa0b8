package pdfreport

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#2C3E50", Color{0x2C, 0x3E, 0x50}, false},
		{"e74c3c", Color{0xE7, 0x4C, 0x3C}, false},
		{" #fff ", White, false},
		{"#000", Black, false},
		{"#12345", Color{}, true},
		{"#GGGGGG", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseHex(%q) error = %v, want ErrInvalidColor", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColor_String(t *testing.T) {
	t.Parallel()

	if got := Hex("#3498db").String(); got != "#3498DB" {
		t.Errorf("String() = %q, want #3498DB", got)
	}
}

func TestHex_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("Hex(\"nope\") did not panic")
		}
	}()
	Hex("nope")
}
