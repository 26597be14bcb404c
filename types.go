package leptjson

import (
	"fmt"
	"strconv"
)

// Type identifies the kind of a parsed value
type Type int

const (
	TypeNull Type = iota
	TypeBoolean
	TypeNumber
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeNumber:
		return "number"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Value holds one parsed JSON value. The zero Value is null.
// A Value is owned by its caller and must not be shared between concurrent Parse calls.
type Value struct {
	typ Type
	b   bool
	n   float64
}

// NullValue returns a null Value
func NullValue() Value {
	return Value{}
}

// BooleanValue returns a boolean Value
func BooleanValue(b bool) Value {
	return Value{typ: TypeBoolean, b: b}
}

// NumberValue returns a number Value
func NumberValue(n float64) Value {
	return Value{typ: TypeNumber, n: n}
}

// GetType returns the type of the value
func (v Value) GetType() Type {
	return v.typ
}

// IsNull reports whether the value is null
func (v Value) IsNull() bool {
	return v.typ == TypeNull
}

// GetNumber returns the numeric payload.
// It panics with a *ContractError when the value is not a number.
func (v Value) GetNumber() float64 {
	if v.typ != TypeNumber {
		panic(newContractError("get_number", TypeNumber, v.typ))
	}
	return v.n
}

// GetBoolean returns the boolean payload.
// It panics with a *ContractError when the value is not a boolean.
func (v Value) GetBoolean() bool {
	if v.typ != TypeBoolean {
		panic(newContractError("get_boolean", TypeBoolean, v.typ))
	}
	return v.b
}

// String renders the value the way it would appear in JSON text
func (v Value) String() string {
	switch v.typ {
	case TypeBoolean:
		return strconv.FormatBool(v.b)
	case TypeNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	default:
		return "null"
	}
}

// GoValue returns the value as nil, bool or float64
func (v Value) GoValue() any {
	switch v.typ {
	case TypeBoolean:
		return v.b
	case TypeNumber:
		return v.n
	default:
		return nil
	}
}

func (v *Value) setNull() {
	*v = Value{}
}

// GetType returns the type of v. v must not be nil.
func GetType(v *Value) Type {
	if v == nil {
		panic(&ContractError{Op: "get_type", Message: "value is nil"})
	}
	return v.typ
}

// GetNumber returns the number held by v.
// Calling it on a nil or non-number value is a programming error and panics.
func GetNumber(v *Value) float64 {
	if v == nil {
		panic(&ContractError{Op: "get_number", Message: "value is nil"})
	}
	return v.GetNumber()
}

// ContractError is the panic payload for accessor precondition violations
type ContractError struct {
	Op       string
	Expected Type
	Actual   Type
	Message  string
}

func newContractError(op string, expected, actual Type) *ContractError {
	return &ContractError{
		Op:       op,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("expected %s value, got %s", expected, actual),
	}
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("leptjson: %s: %s", e.Op, e.Message)
}
