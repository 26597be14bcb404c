package leptjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	t.Run("ZeroValueIsNull", func(t *testing.T) {
		var v Value
		assert.Equal(t, TypeNull, v.GetType())
		assert.True(t, v.IsNull())
		assert.Nil(t, v.GoValue())
		assert.Equal(t, "null", v.String())
	})

	t.Run("Number", func(t *testing.T) {
		v := NumberValue(-1.5e2)
		assert.Equal(t, TypeNumber, v.GetType())
		assert.Equal(t, -150.0, v.GetNumber())
		assert.Equal(t, -150.0, v.GoValue())
		assert.Equal(t, "-150", v.String())
	})

	t.Run("Boolean", func(t *testing.T) {
		v := BooleanValue(true)
		assert.Equal(t, TypeBoolean, v.GetType())
		assert.True(t, v.GetBoolean())
		assert.Equal(t, true, v.GoValue())
		assert.Equal(t, "true", v.String())
	})
}

func TestAccessorContract(t *testing.T) {
	t.Run("GetNumberOnNull", func(t *testing.T) {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			cerr, ok := r.(*ContractError)
			require.True(t, ok)
			assert.Equal(t, "get_number", cerr.Op)
			assert.Equal(t, TypeNumber, cerr.Expected)
			assert.Equal(t, TypeNull, cerr.Actual)
			assert.Contains(t, cerr.Error(), "expected number value, got null")
		}()
		var v Value
		v.GetNumber()
	})

	t.Run("GetBooleanOnNumber", func(t *testing.T) {
		v := NumberValue(1)
		assert.Panics(t, func() { v.GetBoolean() })
	})

	t.Run("NilValue", func(t *testing.T) {
		assert.Panics(t, func() { GetType(nil) })
		assert.Panics(t, func() { GetNumber(nil) })
	})

	t.Run("GetNumberAfterFailedParse", func(t *testing.T) {
		var v Value
		require.Equal(t, StatusInvalidValue, Parse(&v, "1."))
		assert.Panics(t, func() { GetNumber(&v) })
	})
}

func TestTypeAndStatusStrings(t *testing.T) {
	assert.Equal(t, "null", TypeNull.String())
	assert.Equal(t, "boolean", TypeBoolean.String())
	assert.Equal(t, "number", TypeNumber.String())
	assert.Equal(t, "Type(9)", Type(9).String())

	assert.Equal(t, "ok", StatusOK.String())
	assert.Equal(t, "expect_value", StatusExpectValue.String())
	assert.Equal(t, "invalid_value", StatusInvalidValue.String())
	assert.Equal(t, "root_not_singular", StatusRootNotSingular.String())
	assert.Equal(t, "number_too_big", StatusNumberTooBig.String())
	assert.Equal(t, 0, int(StatusOK))

	assert.NoError(t, StatusOK.Err())
	assert.ErrorIs(t, StatusNumberTooBig.Err(), ErrNumberTooBig)
}

func TestParseErrorFormatting(t *testing.T) {
	err := newStatusError("parse", StatusRootNotSingular, 3)
	assert.Equal(t, "JSON parse failed at offset 3: root not singular", err.Error())

	err = newOperationError("check_closed", "processor is closed", ErrProcessorClosed)
	assert.Equal(t, "JSON check_closed failed: processor is closed", err.Error())
	assert.ErrorIs(t, err, &ParseError{Op: "check_closed", Err: ErrProcessorClosed})

	_, ok := StatusOf(err)
	assert.False(t, ok)
}
