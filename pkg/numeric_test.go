package pkg

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int64
		wantErr bool
	}{
		{"simple", "123", 123, false},
		{"leading plus", "+123", 123, false},
		{"negative", "-123", -123, false},
		{"surrounding whitespace", "  42 \t", 42, false},
		{"zero", "0", 0, false},
		{"empty", "", 0, true},
		{"sign only", "-", 0, true},
		{"non-digit", "12a", 0, true},
		{"float-looking", "1.5", 0, true},
		{"int64 max", "9223372036854775807", 9223372036854775807, false},
		{"overflow", "9223372036854775808", 0, true},
		{"int64 min", "-9223372036854775808", -9223372036854775808, false},
		{"overflow negative", "-9223372036854775809", 0, true},
		{"uint64 overflow boundary digit", "18446744073709551616", 0, true},
		{"uint64 max digit count overflow", "99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInt([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseInt(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{"integer", "123", 123, false},
		{"simple decimal", "2.5", 2.5, false},
		{"negative decimal", "-2.5", -2.5, false},
		{"leading dot", ".5", 0.5, false},
		{"trailing dot", "5.", 5, false},
		{"exponent lowercase", "1.23e-4", 1.23e-4, false},
		{"exponent uppercase", "1.23E+4", 1.23e4, false},
		{"surrounding whitespace", " 3.14 ", 3.14, false},
		{"empty", "", 0, true},
		{"sign only", "-", 0, true},
		{"trailing garbage", "1.5x", 0, true},
		{"garbage exponent treated as literal e", "1e", 0, true},
		{"just a dot", ".", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFloat([]byte(tt.in))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFloat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFloat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFloat_ExponentWithoutDigitsIsNotConsumed(t *testing.T) {
	// "1e" has no exponent digits, so the trailing "e" must not be treated
	// as part of the number -- ParseFloat should reject it as garbage
	// rather than silently parsing "1".
	if _, err := ParseFloat([]byte("1e")); err == nil {
		t.Errorf("ParseFloat(\"1e\") succeeded, want error (no exponent digits)")
	}
}
