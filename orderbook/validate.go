/*
validate.go - Field-level validation pipeline

PURPOSE:
  Rejects malformed mutation requests before they reach the ledger with a
  deterministic, first-failure-wins error. The pipeline is stateless: pure
  checks over an input value and its declared name.

CHECK ORDER (fixed):
  1. Missing       - value is absent
  2. Type          - declared kind does not match the runtime kind
  3. Positivity    - numeric values must be > 0
  4. Precision     - numeric values carry at most MaxDecimalPlaces digits
  5. Enumeration   - non-object values must be a member of the allowed list
  6. Object shape  - object values must not carry properties outside the list

  Checks 5 and 6 share the allowed list: for scalar values it is the
  enumeration, for objects it is the permitted property set.

INPUT MODEL:
  Requests arrive as decoded JSON (map[string]any, string, float64), so the
  checks classify runtime kinds rather than static types. Unrecognized
  object keys are enumerated before the request is bound to a typed Order.
*/
package orderbook

import (
	"reflect"
	"sort"
)

// Kind names a runtime value classification for the type check.
type Kind string

const (
	// KindAny skips the type check.
	KindAny Kind = ""

	KindObject Kind = "object"
	KindText   Kind = "string"
	KindNumber Kind = "number"
)

// Validate runs the full check pipeline on one named value. kind is optional
// (KindAny skips the type check); allowed is optional and doubles as the
// enumeration for scalar values and the permitted property set for objects.
// The first failing check wins.
func Validate(name string, value any, kind Kind, allowed []string) error {
	if err := checkMissing(name, value); err != nil {
		return err
	}
	if err := checkType(name, value, kind); err != nil {
		return err
	}
	if err := checkPositive(name, value); err != nil {
		return err
	}
	if err := checkDecimals(name, value); err != nil {
		return err
	}
	if err := checkAllowed(name, value, allowed); err != nil {
		return err
	}
	return checkProperties(name, value, allowed)
}

func checkMissing(name string, value any) error {
	if value == nil {
		return fieldErr(name, ErrMissingParameter, "The %s parameter is missing.", name)
	}
	return nil
}

func checkType(name string, value any, kind Kind) error {
	if kind == KindAny {
		return nil
	}
	if kindOf(value) != kind {
		return fieldErr(name, ErrWrongType, "%s must be a %s.", name, kind)
	}
	return nil
}

func checkPositive(name string, value any) error {
	if f, ok := toFloat(value); ok && f <= 0 {
		return fieldErr(name, ErrNotPositive, "%s must be a positive and none zero number.", name)
	}
	return nil
}

func checkDecimals(name string, value any) error {
	if f, ok := toFloat(value); ok && CountDecimals(f) > MaxDecimalPlaces {
		return fieldErr(name, ErrTooManyDecimals, "%s must have maximum of %d decimal places.", name, MaxDecimalPlaces)
	}
	return nil
}

func checkAllowed(name string, value any, allowed []string) error {
	if allowed == nil || kindOf(value) == KindObject {
		return nil
	}
	if s, ok := value.(string); ok {
		for _, v := range allowed {
			if s == v {
				return nil
			}
		}
	}
	return fieldErr(name, ErrNotAllowed, "%s must be one of %s.", name, joinProperties(allowed))
}

func checkProperties(name string, value any, allowed []string) error {
	if allowed == nil {
		return nil
	}
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	// Map iteration order is not stable, so unknown keys are reported in
	// sorted order to keep the message deterministic.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var invalid []string
	for _, k := range keys {
		if !containsString(allowed, k) {
			invalid = append(invalid, k)
		}
	}
	if len(invalid) > 0 {
		return fieldErr(name, ErrUnexpectedProperties,
			"%s contains invalid properties %s.", name, joinProperties(invalid))
	}
	return nil
}

// =============================================================================
// RUNTIME KIND CLASSIFICATION
// =============================================================================

// kindOf classifies a decoded value. Maps, slices, and structs all count as
// objects; every numeric type counts as a number.
func kindOf(value any) Kind {
	switch value.(type) {
	case nil:
		return KindAny
	case string:
		return KindText
	case bool:
		return Kind("boolean")
	case map[string]any:
		return KindObject
	}
	if _, ok := toFloat(value); ok {
		return KindNumber
	}
	t := reflect.TypeOf(value)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return KindObject
	}
	return Kind("unsupported")
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
