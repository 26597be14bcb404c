package internal

import (
	"math"
	"strconv"
)

// NumberShape is the outcome of lexical number validation
type NumberShape int

const (
	// NumberInvalid means the text does not match the JSON number grammar
	NumberInvalid NumberShape = iota
	// NumberValid means the text is a well-formed JSON number
	NumberValid
	// NumberLeadingZero means a leading zero is followed by something other than '.' or the token end, e.g. "01"
	NumberLeadingZero
)

func (s NumberShape) String() string {
	switch s {
	case NumberValid:
		return "valid"
	case NumberLeadingZero:
		return "leading_zero"
	default:
		return "invalid"
	}
}

type numberState int

const (
	stateBegin numberState = iota
	stateSign
	stateZeroOrOther
	stateDigit
	stateDot
	stateExponent
	stateEnd
)

// numberScanner walks a candidate number once, forward only
type numberScanner struct {
	s           string
	pos         int
	end         int // end of the leading literal when a fraction follows an exponent
	hasDot      bool
	hasExponent bool
}

// ValidateNumber reports whether s starts with a lexically valid JSON number
// that runs up to the end of the token, and the length of the number literal
// at the start of s. The token ends at the end of s or at the first whitespace
// byte; what follows the token is not inspected. The length is only meaningful
// for NumberValid.
//
// A fraction after an exponent, as in "1e5.5", keeps the shape valid but the
// literal stops before the dot.
func ValidateNumber(s string) (NumberShape, int) {
	sc := numberScanner{s: s}
	state := stateBegin
	for state != stateEnd {
		next, shape, ok := sc.step(state)
		if !ok {
			return shape, 0
		}
		state = next
	}
	if sc.end > 0 {
		return NumberValid, sc.end
	}
	return NumberValid, sc.pos
}

func (sc *numberScanner) peek() byte {
	if sc.pos < len(sc.s) {
		return sc.s[sc.pos]
	}
	return 0
}

func (sc *numberScanner) atTokenEnd() bool {
	return sc.pos >= len(sc.s) || IsWhitespace(sc.s[sc.pos])
}

// step runs a single transition. ok is false when scanning stops early with shape.
func (sc *numberScanner) step(state numberState) (next numberState, shape NumberShape, ok bool) {
	switch state {
	case stateBegin:
		return stateSign, NumberValid, true

	case stateSign:
		c := sc.peek()
		if c == '-' {
			sc.pos++
			return stateZeroOrOther, NumberValid, true
		}
		if IsDigit(c) {
			return stateZeroOrOther, NumberValid, true
		}
		return stateEnd, NumberInvalid, false

	case stateZeroOrOther:
		c := sc.peek()
		if c == '0' {
			sc.pos++
			switch {
			case sc.peek() == '.':
				sc.pos++
				return stateDot, NumberValid, true
			case sc.atTokenEnd():
				return stateEnd, NumberValid, true
			default:
				return stateEnd, NumberLeadingZero, false
			}
		}
		if IsDigit1To9(c) {
			return stateDigit, NumberValid, true
		}
		return stateEnd, NumberInvalid, false

	case stateDigit:
		for sc.pos < len(sc.s) && IsDigit(sc.s[sc.pos]) {
			sc.pos++
		}
		if sc.atTokenEnd() {
			return stateEnd, NumberValid, true
		}
		switch sc.s[sc.pos] {
		case '.':
			if sc.hasDot {
				return stateEnd, NumberInvalid, false
			}
			if sc.hasExponent {
				sc.end = sc.pos
			}
			sc.hasDot = true
			sc.pos++
			return stateDot, NumberValid, true
		case 'e', 'E':
			if sc.hasExponent {
				return stateEnd, NumberInvalid, false
			}
			sc.hasExponent = true
			sc.pos++
			return stateExponent, NumberValid, true
		}
		return stateEnd, NumberInvalid, false

	case stateDot:
		sc.hasDot = true
		if sc.pos < len(sc.s) && IsDigit(sc.s[sc.pos]) {
			return stateDigit, NumberValid, true
		}
		return stateEnd, NumberInvalid, false

	case stateExponent:
		sc.hasExponent = true
		if c := sc.peek(); c == '+' || c == '-' {
			sc.pos++
		}
		if sc.pos < len(sc.s) && IsDigit(sc.s[sc.pos]) {
			return stateDigit, NumberValid, true
		}
		return stateEnd, NumberInvalid, false
	}

	return stateEnd, NumberInvalid, false
}

// ParseFloat converts a number literal, as delimited by ValidateNumber, to a float64.
// consumed is len(s) on success and 0 when s is not a number.
// overflow is set when the magnitude does not fit in a float64; f is 0 then.
func ParseFloat(s string) (f float64, consumed int, overflow bool) {
	if s == "" {
		return 0, 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if math.IsInf(f, 0) {
		return 0, len(s), true
	}
	if err != nil {
		// Underflow rounds toward zero and is not an error here
		if numErr, ok := err.(*strconv.NumError); !ok || numErr.Err != strconv.ErrRange {
			return 0, 0, false
		}
	}
	return f, len(s), false
}

// IsWhitespace reports whether c is JSON insignificant whitespace
func IsWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// IsDigit reports whether c is an ASCII digit
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsDigit1To9 reports whether c is an ASCII digit other than '0'
func IsDigit1To9(c byte) bool {
	return c >= '1' && c <= '9'
}
