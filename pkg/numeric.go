package pkg

import "math"

// ParseInt performs a strict byte-string to integer conversion: an
// optional leading sign, one or more decimal digits, surrounding
// whitespace permitted. Empty input, non-digit bytes, and values that
// overflow int64 are rejected.
func ParseInt(b []byte) (int64, error) {
	b = trimSpace(b)
	if len(b) == 0 {
		return 0, &ConversionError{Value: string(b)}
	}

	neg := false
	i := 0
	switch b[0] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}
	if i == len(b) {
		return 0, &ConversionError{Value: string(b)}
	}

	var n uint64
	for ; i < len(b); i++ {
		d := b[i]
		if d < '0' || d > '9' {
			return 0, &ConversionError{Value: string(b)}
		}
		digit := uint64(d - '0')
		if n > (math.MaxUint64-digit)/10 {
			return 0, &ConversionError{Value: string(b)}
		}
		n = n*10 + digit
	}

	if neg {
		if n > -math.MinInt64 {
			return 0, &ConversionError{Value: string(b)}
		}
		return -int64(n), nil
	}
	if n > math.MaxInt64 {
		return 0, &ConversionError{Value: string(b)}
	}
	return int64(n), nil
}

// ParseFloat performs a strict byte-string to float64 conversion: an
// optional sign, an integer part, an optional fractional part, an
// optional e/E exponent with its own optional sign, surrounding
// whitespace permitted. Empty input and trailing garbage are rejected.
func ParseFloat(b []byte) (float64, error) {
	b = trimSpace(b)
	if len(b) == 0 {
		return 0, &ConversionError{Value: string(b)}
	}

	i := 0
	if b[i] == '+' || b[i] == '-' {
		i++
	}

	digitsStart := i
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	hasIntDigits := i > digitsStart

	hasFracDigits := false
	if i < len(b) && b[i] == '.' {
		i++
		fracStart := i
		for i < len(b) && isDigit(b[i]) {
			i++
		}
		hasFracDigits = i > fracStart
	}

	if !hasIntDigits && !hasFracDigits {
		return 0, &ConversionError{Value: string(b)}
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		expStart := i
		i++
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			i++
		}
		digitsAfterE := i
		for i < len(b) && isDigit(b[i]) {
			i++
		}
		if i == digitsAfterE {
			i = expStart // no exponent digits: not part of the number
		}
	}

	if i != len(b) {
		return 0, &ConversionError{Value: string(b)}
	}

	return parseFloatBytes(b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimSpace(b []byte) []byte {
	i, j := 0, len(b)
	for i < j && isSpace(b[i]) {
		i++
	}
	for j > i && isSpace(b[j-1]) {
		j--
	}
	return b[i:j]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// parseFloatBytes converts an already-validated numeric literal into a
// float64 by accumulating mantissa digits and applying the decimal
// exponent, avoiding a dependency on strconv for the core conversion path.
func parseFloatBytes(b []byte) (float64, error) {
	i := 0
	neg := false
	if b[i] == '+' || b[i] == '-' {
		neg = b[i] == '-'
		i++
	}

	var mantissa float64
	for i < len(b) && isDigit(b[i]) {
		mantissa = mantissa*10 + float64(b[i]-'0')
		i++
	}

	exp := 0
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && isDigit(b[i]) {
			mantissa = mantissa*10 + float64(b[i]-'0')
			exp--
			i++
		}
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		i++
		expNeg := false
		if i < len(b) && (b[i] == '+' || b[i] == '-') {
			expNeg = b[i] == '-'
			i++
		}
		e := 0
		for i < len(b) && isDigit(b[i]) {
			e = e*10 + int(b[i]-'0')
			i++
		}
		if expNeg {
			e = -e
		}
		exp += e
	}

	// Dividing by an exact power of ten keeps short decimals such as
	// "1.23e-4" correctly rounded; multiplying by an inexact 10^-n does not.
	var result float64
	if exp < 0 {
		result = mantissa / math.Pow10(-exp)
	} else {
		result = mantissa * math.Pow10(exp)
	}
	if neg {
		result = -result
	}
	return result, nil
}
