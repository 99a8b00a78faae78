package units

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Quantity is an ingredient line split into a leading amount, an
// optional unit and the remaining description. It is immutable once
// parsed; nothing is cached between calls.
type Quantity struct {
	Amount      float64
	Unit        Unit
	Description string
}

var (
	intOrDecimalRe = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	fractionRe     = regexp.MustCompile(`^\d+/\d+$`)
	integerRe      = regexp.MustCompile(`^\d+$`)
)

// vulgarFractions maps single-codepoint fractions to their ASCII form.
var vulgarFractions = map[rune]string{
	'½': "1/2",
	'⅓': "1/3",
	'⅔': "2/3",
	'¼': "1/4",
	'¾': "3/4",
	'⅛': "1/8",
	'⅜': "3/8",
	'⅝': "5/8",
	'⅞': "7/8",
}

// ParseLine splits a raw ingredient line into (amount, unit, description).
// It reports ok=false when the line carries no leading numeric amount;
// such lines pass through every downstream stage unchanged.
func ParseLine(line string) (Quantity, bool) {
	s := strings.TrimSpace(line)
	// Markdown bullet markers are stripped before parsing.
	for strings.HasPrefix(s, "*") || strings.HasPrefix(s, "-") {
		s = strings.TrimSpace(s[1:])
	}
	if s == "" {
		return Quantity{}, false
	}
	s = normalizeFractions(s)

	fields := strings.Fields(s)
	amount, consumed, ok := parseAmount(fields)
	if !ok {
		return Quantity{}, false
	}
	rest := fields[consumed:]
	q := Quantity{Amount: amount}
	if len(rest) > 0 {
		if tok, ok := unitToken(rest[0]); ok {
			q.Unit = Normalize(tok)
			rest = rest[1:]
		}
	}
	q.Description = strings.Join(rest, " ")
	return q, true
}

// parseAmount reads an integer, decimal, simple fraction, or mixed
// number ("1 1/2") from the head of the token list. It returns the
// value and how many tokens it consumed.
func parseAmount(fields []string) (float64, int, bool) {
	if len(fields) == 0 {
		return 0, 0, false
	}
	head := fields[0]
	switch {
	case fractionRe.MatchString(head):
		v, ok := fractionValue(head)
		return v, 1, ok
	case integerRe.MatchString(head):
		whole, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return 0, 0, false
		}
		if len(fields) > 1 && fractionRe.MatchString(fields[1]) {
			frac, ok := fractionValue(fields[1])
			if !ok {
				return 0, 0, false
			}
			return whole + frac, 2, true
		}
		return whole, 1, true
	case intOrDecimalRe.MatchString(head):
		v, err := strconv.ParseFloat(head, 64)
		if err != nil {
			return 0, 0, false
		}
		return v, 1, true
	}
	return 0, 0, false
}

func fractionValue(tok string) (float64, bool) {
	i := strings.IndexByte(tok, '/')
	num, err1 := strconv.Atoi(tok[:i])
	den, err2 := strconv.Atoi(tok[i+1:])
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

// unitToken validates a candidate unit token. After stripping trailing
// punctuation it must contain at least one letter, '%', or '/'; this
// keeps parenthetical quantities like "(14" out of the unit slot.
func unitToken(tok string) (string, bool) {
	tok = strings.TrimRight(tok, ".,;:")
	if tok == "" {
		return "", false
	}
	for _, r := range tok {
		if unicode.IsLetter(r) || r == '%' || r == '/' {
			return strings.ToLower(tok), true
		}
	}
	return "", false
}

// normalizeFractions rewrites Unicode vulgar fractions to ASCII form. A
// fraction codepoint immediately following a digit becomes a mixed
// number ("1½" -> "1 1/2"); standalone it becomes the bare fraction.
func normalizeFractions(s string) string {
	var b strings.Builder
	prevDigit := false
	for _, r := range s {
		if ascii, ok := vulgarFractions[r]; ok {
			if prevDigit {
				b.WriteByte(' ')
			}
			b.WriteString(ascii)
			prevDigit = false
			continue
		}
		b.WriteRune(r)
		prevDigit = r >= '0' && r <= '9'
	}
	return b.String()
}
