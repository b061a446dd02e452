package textutil

import "testing"

func TestSafeFloat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      float64
		expected float64
	}{
		{"Integer", "12", -1, 12},
		{"Float", "12.5", -1, 12.5},
		{"Negative", "-3.25", 0, -3.25},
		{"Empty string", "", -1, -1},
		{"Garbage", "12x", -1, -1},
		{"Whitespace", " 12 ", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeFloat(tt.input, tt.def)
			if result != tt.expected {
				t.Errorf("SafeFloat(%q, %v) = %v; want %v", tt.input, tt.def, result, tt.expected)
			}
		})
	}
}

func TestSafeInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      int
		expected int
	}{
		{"Integer", "12", -1, 12},
		{"Float truncates", "12.7", -1, 12},
		{"Negative float truncates", "-2.9", 0, -2},
		{"Empty string", "", 7, 7},
		{"Garbage", "abc", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeInt(tt.input, tt.def)
			if result != tt.expected {
				t.Errorf("SafeInt(%q, %d) = %d; want %d", tt.input, tt.def, result, tt.expected)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"With BOM", []byte{0xEF, 0xBB, 0xBF, 'a', '=', 'b'}, "a=b"},
		{"Without BOM", []byte("a=b"), "a=b"},
		{"Only BOM", []byte{0xEF, 0xBB, 0xBF}, ""},
		{"Empty", []byte{}, ""},
		{"BOM not at start", []byte{'x', 0xEF, 0xBB, 0xBF}, string([]byte{'x', 0xEF, 0xBB, 0xBF})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RemoveBOM(tt.input)
			if string(result) != tt.expected {
				t.Errorf("RemoveBOM(%v) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}
