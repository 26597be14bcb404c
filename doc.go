// Package leptjson provides a small, strict JSON value parser for the scalar
// values null, true, false and numbers.
//
// The package uses an internal package for implementation details:
//
//   - internal: number grammar validation, float conversion and metrics collection
//
// # Basic Usage
//
// Parse writes into a caller-owned Value and reports a status code:
//
//	var v leptjson.Value
//	if status := leptjson.Parse(&v, " -1.5e+2 "); status == leptjson.StatusOK {
//		n := v.GetNumber() // -150
//	}
//
// Parse statuses:
//
//   - StatusOK: exactly one value, surrounded only by whitespace
//   - StatusExpectValue: empty or whitespace-only input
//   - StatusInvalidValue: malformed literal or number
//   - StatusRootNotSingular: trailing characters after a value, or a leading zero followed by digits
//   - StatusNumberTooBig: number outside the float64 range
//
// On any status other than StatusOK the Value is null.
//
// # Processor
//
// Processor wraps Parse with input limits, structured logging and metrics, and
// returns errors that match the package sentinel errors:
//
//	processor := leptjson.New()
//	defer processor.Close()
//	v, err := processor.Parse(ctx, "01")
//	if errors.Is(err, leptjson.ErrRootNotSingular) {
//		// ...
//	}
//
// Accessors such as GetNumber panic with a *ContractError when called on a
// value of another type.
package leptjson
