package utils

import "testing"

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"integer", "5", 5, true},
		{"decimal", "0.25", 0.25, true},
		{"padded", "  12.5 ", 12.5, true},
		{"zero", "0", 0, false},
		{"negative", "-5", 0, false},
		{"empty", "", 0, false},
		{"text", "ten", 0, false},
		{"infinity", "Inf", 0, false},
		{"nan", "NaN", 0, false},
		{"hex float", "0x1p-2", 0, false},
		{"signed hex", "+0X10", 0, false},
		{"exponent", "2.5e3", 2500, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantity(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseQuantity(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestFormatQuantity(t *testing.T) {
	if got := FormatQuantity("25", "kg"); got != "25 kg" {
		t.Errorf("FormatQuantity = %q", got)
	}
	if got := FormatQuantity("", "kg"); got != "—" {
		t.Errorf("FormatQuantity without quantity = %q", got)
	}
}

func TestDisplayPhone(t *testing.T) {
	tests := []struct {
		code, phone, want string
	}{
		{"91", "9876543210", "+91-9876543210"},
		{"+44", "2079460000", "+44-2079460000"},
		{"", "+1 555 0100", "+1 555 0100"},
	}
	for _, tt := range tests {
		if got := DisplayPhone(tt.code, tt.phone); got != tt.want {
			t.Errorf("DisplayPhone(%q, %q) = %q, want %q", tt.code, tt.phone, got, tt.want)
		}
	}
}

func TestEscapeLike(t *testing.T) {
	if got := EscapeLike(`50%_a\b`); got != `50\%\_a\\b` {
		t.Errorf("EscapeLike = %q", got)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{[]string{"", "  ", "b", "c"}, "b"},
		{[]string{"a", "b"}, "a"},
		{[]string{"", " "}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := FirstNonEmpty(tt.values...); got != tt.want {
			t.Errorf("FirstNonEmpty(%q) = %q, want %q", tt.values, got, tt.want)
		}
	}
}
