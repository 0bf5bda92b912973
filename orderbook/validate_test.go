package orderbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warp/order-book/orderbook"
)

// =============================================================================
// MISSING CHECK
// =============================================================================

func TestValidate_MissingValue(t *testing.T) {
	err := orderbook.Validate("clientId", nil, orderbook.KindText, nil)

	assert.EqualError(t, err, "The clientId parameter is missing.")
	assert.ErrorIs(t, err, orderbook.ErrMissingParameter)
}

// =============================================================================
// TYPE CHECK
// =============================================================================

func TestValidate_WrongType(t *testing.T) {
	cases := []struct {
		name    string
		field   string
		value   any
		kind    orderbook.Kind
		message string
	}{
		{"number for object", "order", -1.0, orderbook.KindObject, "order must be a object."},
		{"text for object", "order", "123", orderbook.KindObject, "order must be a object."},
		{"bool for object", "order", true, orderbook.KindObject, "order must be a object."},
		{"number for text", "clientId", 1, orderbook.KindText, "clientId must be a string."},
		{"bool for text", "clientId", true, orderbook.KindText, "clientId must be a string."},
		{"object for text", "clientId", map[string]any{}, orderbook.KindText, "clientId must be a string."},
		{"text for number", "quantity", "5.2", orderbook.KindNumber, "quantity must be a number."},
		{"bool for number", "quantity", false, orderbook.KindNumber, "quantity must be a number."},
		{"object for number", "price", map[string]any{}, orderbook.KindNumber, "price must be a number."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := orderbook.Validate(tc.field, tc.value, tc.kind, nil)
			assert.EqualError(t, err, tc.message)
			assert.ErrorIs(t, err, orderbook.ErrWrongType)
		})
	}
}

func TestValidate_TypeCheckedBeforePositivity(t *testing.T) {
	// "abc" is not positive either, but the type failure wins.
	err := orderbook.Validate("quantity", "abc", orderbook.KindNumber, nil)

	assert.ErrorIs(t, err, orderbook.ErrWrongType)
}

// =============================================================================
// POSITIVITY CHECK
// =============================================================================

func TestValidate_NonPositiveNumbers(t *testing.T) {
	for _, v := range []float64{0, -1, -304.5} {
		err := orderbook.Validate("quantity", v, orderbook.KindNumber, nil)

		assert.EqualError(t, err, "quantity must be a positive and none zero number.")
		assert.ErrorIs(t, err, orderbook.ErrNotPositive)
	}
}

func TestValidate_PositivityAppliesWithoutDeclaredKind(t *testing.T) {
	// The check fires for any numeric value, kind declaration or not.
	err := orderbook.Validate("quantity", -1.0, orderbook.KindAny, nil)

	assert.ErrorIs(t, err, orderbook.ErrNotPositive)
}

// =============================================================================
// PRECISION CHECK
// =============================================================================

func TestValidate_TooManyDecimals(t *testing.T) {
	err := orderbook.Validate("price", 12.1234567890123, orderbook.KindNumber, nil)

	assert.EqualError(t, err, "price must have maximum of 12 decimal places.")
	assert.ErrorIs(t, err, orderbook.ErrTooManyDecimals)

	var fieldErr *orderbook.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "price", fieldErr.Field)
}

func TestValidate_TwelveDecimalsAccepted(t *testing.T) {
	assert.NoError(t, orderbook.Validate("price", 1.123456789012, orderbook.KindNumber, nil))
}

func TestValidate_FloatArtifactRejected(t *testing.T) {
	// Summed at runtime, 0.1+0.2 carries 17 fractional digits in its wire
	// representation. A constant expression would fold exactly to 0.3 and
	// never exercise the quirk.
	a, b := 0.1, 0.2
	err := orderbook.Validate("quantity", a+b, orderbook.KindNumber, nil)

	assert.ErrorIs(t, err, orderbook.ErrTooManyDecimals)
	assert.EqualError(t, err, "quantity must have maximum of 12 decimal places.")
}

// =============================================================================
// ENUMERATION CHECK
// =============================================================================

func TestValidate_Enumeration(t *testing.T) {
	allowed := []string{"BUY", "SELL"}

	assert.NoError(t, orderbook.Validate("orderType", "BUY", orderbook.KindText, allowed))
	assert.NoError(t, orderbook.Validate("orderType", "SELL", orderbook.KindText, allowed))

	err := orderbook.Validate("orderType", "LIMIT", orderbook.KindText, allowed)
	assert.EqualError(t, err, "orderType must be one of BUY, SELL.")
	assert.ErrorIs(t, err, orderbook.ErrNotAllowed)
}

// =============================================================================
// OBJECT SHAPE CHECK
// =============================================================================

func TestValidate_UnexpectedProperties(t *testing.T) {
	value := map[string]any{
		"clientId":  "c1",
		"quantity":  1.0,
		"price":     2.0,
		"orderType": "BUY",
		"ttl":       30.0,
		"side":      "BUY",
	}

	err := orderbook.Validate("order", value, orderbook.KindObject,
		[]string{"clientId", "quantity", "price", "orderType"})

	// Unknown keys are reported in sorted order for determinism.
	assert.EqualError(t, err, "order contains invalid properties side, ttl.")
	assert.ErrorIs(t, err, orderbook.ErrUnexpectedProperties)
}

func TestValidate_ExactPropertySetAccepted(t *testing.T) {
	value := map[string]any{
		"clientId":  "c1",
		"quantity":  1.0,
		"price":     2.0,
		"orderType": "BUY",
	}

	assert.NoError(t, orderbook.Validate("order", value, orderbook.KindObject,
		[]string{"clientId", "quantity", "price", "orderType"}))
}

func TestValidate_ObjectSkipsEnumeration(t *testing.T) {
	// For object values the allowed list is the property set, never an
	// enumeration of the value itself.
	value := map[string]any{"clientId": "c1"}

	assert.NoError(t, orderbook.Validate("order", value, orderbook.KindObject,
		[]string{"clientId", "quantity", "price", "orderType"}))
}
