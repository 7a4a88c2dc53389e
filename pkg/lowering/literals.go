package lowering

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"groovy/frontend-go/pkg/ast"
)

const decimalPrecision = 256

// DecodeString strips the delimiters of a string literal and decodes its
// escapes. Triple-quoted and single-quoted forms decode octal escapes and
// then the standard escapes; slashy strings only unescape `\/`.
func DecodeString(text string) (string, error) {
	var (
		inner  string
		slashy bool
	)
	switch {
	case strings.HasPrefix(text, `'''`), strings.HasPrefix(text, `"""`):
		if len(text) < 6 {
			return "", malformed(ErrInvalidLiteral, nil, "unterminated string literal %s", text)
		}
		inner = text[3 : len(text)-3]
	case strings.HasPrefix(text, `'`), strings.HasPrefix(text, `"`), strings.HasPrefix(text, `/`):
		if len(text) < 2 {
			return "", malformed(ErrInvalidLiteral, nil, "unterminated string literal %s", text)
		}
		inner = text[1 : len(text)-1]
		slashy = text[0] == '/'
	default:
		return "", malformed(ErrInvalidLiteral, nil, "string literal %q has no delimiters", text)
	}
	if slashy {
		return strings.ReplaceAll(inner, `\/`, `/`), nil
	}
	return replaceStandardEscapes(replaceOctalEscapes(inner)), nil
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

// replaceOctalEscapes decodes \0 through \377. An escaped backslash is
// copied through untouched so the standard pass sees it.
func replaceOctalEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		next := s[i+1]
		if next == '\\' {
			sb.WriteString(`\\`)
			i++
			continue
		}
		if !isOctalDigit(next) {
			sb.WriteByte('\\')
			continue
		}
		digits := 1
		if i+2 < len(s) && isOctalDigit(s[i+2]) {
			digits = 2
			if next <= '3' && i+3 < len(s) && isOctalDigit(s[i+3]) {
				digits = 3
			}
		}
		value, _ := strconv.ParseUint(s[i+1:i+1+digits], 8, 16)
		sb.WriteRune(rune(value))
		i += digits
	}
	return sb.String()
}

func replaceStandardEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			sb.WriteByte(s[i])
			continue
		}
		switch next := s[i+1]; next {
		case 'b':
			sb.WriteByte('\b')
		case 't':
			sb.WriteByte('\t')
		case 'n':
			sb.WriteByte('\n')
		case 'f':
			sb.WriteByte('\f')
		case 'r':
			sb.WriteByte('\r')
		case '"', '\'', '\\', '$':
			sb.WriteByte(next)
		case 'u':
			if r, ok := unicodeEscape(s[i+2:]); ok {
				sb.WriteRune(r)
				i += 5
				continue
			}
			sb.WriteString(`\u`)
		default:
			sb.WriteByte('\\')
			sb.WriteByte(next)
		}
		i++
	}
	return sb.String()
}

func unicodeEscape(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	value, err := strconv.ParseUint(s[:4], 16, 32)
	if err != nil || !utf8.ValidRune(rune(value)) {
		return 0, false
	}
	return rune(value), true
}

// DecodeInteger parses an integer literal. Radix prefixes (0x, 0b, leading
// 0 for octal), underscores and the i/l/g suffixes are honoured; without a
// suffix the smallest of int, long and BigInteger that holds the value wins.
func DecodeInteger(text string) (*ast.IntegerLiteral, error) {
	boxed := !strings.HasPrefix(text, "-")
	digits := strings.ReplaceAll(strings.TrimPrefix(text, "-"), "_", "")
	if digits == "" {
		return nil, malformed(ErrInvalidLiteral, nil, "invalid integer literal %q", text)
	}
	var forced ast.NumberType
	switch digits[len(digits)-1] {
	case 'i', 'I':
		forced = ast.NumberInt
	case 'l', 'L':
		forced = ast.NumberLong
	case 'g', 'G':
		forced = ast.NumberBigInteger
	}
	if forced != "" {
		digits = digits[:len(digits)-1]
	}
	radix := 10
	switch {
	case len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X"):
		radix, digits = 16, digits[2:]
	case len(digits) > 2 && (digits[:2] == "0b" || digits[:2] == "0B"):
		radix, digits = 2, digits[2:]
	case len(digits) > 1 && digits[0] == '0':
		radix, digits = 8, digits[1:]
	}
	value, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return nil, malformed(ErrInvalidLiteral, nil, "invalid integer literal %q", text)
	}
	if !boxed {
		value.Neg(value)
	}
	numberType := forced
	switch forced {
	case "":
		switch {
		case value.IsInt64() && value.Int64() >= math.MinInt32 && value.Int64() <= math.MaxInt32:
			numberType = ast.NumberInt
		case value.IsInt64():
			numberType = ast.NumberLong
		default:
			numberType = ast.NumberBigInteger
		}
	case ast.NumberInt:
		if !value.IsInt64() || value.Int64() < math.MinInt32 || value.Int64() > math.MaxInt32 {
			return nil, malformed(ErrInvalidLiteral, nil, "integer literal %q out of range for int", text)
		}
	case ast.NumberLong:
		if !value.IsInt64() {
			return nil, malformed(ErrInvalidLiteral, nil, "integer literal %q out of range for long", text)
		}
	}
	return ast.NewIntegerLiteral(value, numberType, boxed), nil
}

// DecodeDecimal parses a floating literal. The f/d/g suffixes select float,
// double and BigDecimal; BigDecimal is the default.
func DecodeDecimal(text string) (*ast.DecimalLiteral, error) {
	boxed := !strings.HasPrefix(text, "-")
	digits := strings.ReplaceAll(strings.TrimPrefix(text, "-"), "_", "")
	if digits == "" {
		return nil, malformed(ErrInvalidLiteral, nil, "invalid decimal literal %q", text)
	}
	numberType := ast.NumberBigDecimal
	prec := uint(decimalPrecision)
	switch digits[len(digits)-1] {
	case 'f', 'F':
		numberType, prec = ast.NumberFloat, 24
		digits = digits[:len(digits)-1]
	case 'd', 'D':
		numberType, prec = ast.NumberDouble, 53
		digits = digits[:len(digits)-1]
	case 'g', 'G':
		digits = digits[:len(digits)-1]
	}
	value, _, err := big.ParseFloat(digits, 10, prec, big.ToNearestEven)
	if err != nil {
		return nil, malformed(ErrInvalidLiteral, nil, "invalid decimal literal %q", text)
	}
	if !boxed {
		value.Neg(value)
	}
	switch numberType {
	case ast.NumberFloat:
		if f, _ := value.Float32(); math.IsInf(float64(f), 0) {
			return nil, malformed(ErrInvalidLiteral, nil, "decimal literal %q out of range for float", text)
		}
	case ast.NumberDouble:
		if f, _ := value.Float64(); math.IsInf(f, 0) {
			return nil, malformed(ErrInvalidLiteral, nil, "decimal literal %q out of range for double", text)
		}
	}
	return ast.NewDecimalLiteral(value, numberType, boxed), nil
}
