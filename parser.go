package leptjson

import (
	"github.com/cybergodev/leptjson/internal"
)

// parseContext is the read cursor of a single Parse call
type parseContext struct {
	json string
	pos  int
}

func (c *parseContext) rest() string {
	return c.json[c.pos:]
}

func (c *parseContext) atEnd() bool {
	return c.pos >= len(c.json)
}

func (c *parseContext) skipWhitespace() {
	for c.pos < len(c.json) && internal.IsWhitespace(c.json[c.pos]) {
		c.pos++
	}
}

// Parse parses text as a single JSON null, boolean or number and stores it in v.
// v is reset to null on entry and stays null unless StatusOK is returned.
func Parse(v *Value, text string) ParseStatus {
	status, _ := parse(v, text)
	return status
}

// parse is Parse plus the offset at which parsing stopped
func parse(v *Value, text string) (ParseStatus, int) {
	if v == nil {
		panic(&ContractError{Op: "parse", Message: "value is nil"})
	}
	c := &parseContext{json: text}
	v.setNull()

	c.skipWhitespace()
	status := c.parseValue(v)
	if status == StatusOK {
		c.skipWhitespace()
		if !c.atEnd() {
			v.setNull()
			status = StatusRootNotSingular
		}
	}
	return status, c.pos
}

func (c *parseContext) parseValue(v *Value) ParseStatus {
	if c.atEnd() {
		return StatusExpectValue
	}
	switch c.json[c.pos] {
	case 't':
		return c.parseLiteral(v, "true", BooleanValue(true))
	case 'f':
		return c.parseLiteral(v, "false", BooleanValue(false))
	case 'n':
		return c.parseLiteral(v, "null", NullValue())
	default:
		return c.parseNumber(v)
	}
}

// parseLiteral matches literal byte for byte. The first byte was checked by the caller.
// A literal running on into further letters, as in "truee", is invalid; any
// other trailing byte is left for the root-singular check.
func (c *parseContext) parseLiteral(v *Value, literal string, result Value) ParseStatus {
	rest := c.rest()
	if len(rest) < len(literal) || rest[:len(literal)] != literal {
		return StatusInvalidValue
	}
	if len(rest) > len(literal) && isLetter(rest[len(literal)]) {
		return StatusInvalidValue
	}
	c.pos += len(literal)
	*v = result
	return StatusOK
}

func (c *parseContext) parseNumber(v *Value) ParseStatus {
	shape, length := internal.ValidateNumber(c.rest())
	switch shape {
	case internal.NumberInvalid:
		v.setNull()
		return StatusInvalidValue
	case internal.NumberLeadingZero:
		v.setNull()
		return StatusRootNotSingular
	}

	n, consumed, overflow := internal.ParseFloat(c.rest()[:length])
	if overflow {
		v.setNull()
		return StatusNumberTooBig
	}
	if consumed == 0 {
		v.setNull()
		return StatusInvalidValue
	}
	c.pos += consumed
	*v = NumberValue(n)
	return StatusOK
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
