package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Value wraps a field value and provides type conversion helpers.
type Value struct {
	Raw any
}

// String returns the value as a string.
func (v Value) String() string {
	if v.Raw == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Raw)
}

// Int returns the value as an int.
func (v Value) Int() (int, error) {
	switch raw := v.Raw.(type) {
	case int:
		return raw, nil
	case int32:
		return int(raw), nil
	case int64:
		return int(raw), nil
	}
	return 0, errors.Errorf("value is not an int: %T", v.Raw)
}

// Float returns the value as a float64.
func (v Value) Float() (float64, error) {
	switch raw := v.Raw.(type) {
	case float64:
		return raw, nil
	case float32:
		return float64(raw), nil
	}
	return 0, errors.Errorf("value is not a float64: %T", v.Raw)
}

// Decimal returns numeric and numeric-looking string values as a decimal.
func (v Value) Decimal() (decimal.Decimal, error) {
	switch raw := v.Raw.(type) {
	case decimal.Decimal:
		return raw, nil
	case float64:
		return decimal.NewFromFloat(raw), nil
	case float32:
		return decimal.NewFromFloat32(raw), nil
	case int:
		return decimal.NewFromInt(int64(raw)), nil
	case int32:
		return decimal.NewFromInt32(raw), nil
	case int64:
		return decimal.NewFromInt(raw), nil
	case string:
		dec, err := decimal.NewFromString(raw)
		err = errors.Wrapf(err, "value is not a number: %q", raw)
		return dec, err
	}
	return decimal.Zero, errors.Errorf("value is not a number: %T", v.Raw)
}

// Bool returns the value as a bool.
func (v Value) Bool() (bool, error) {
	switch raw := v.Raw.(type) {
	case bool:
		return raw, nil
	case string:
		b, err := strconv.ParseBool(raw)
		err = errors.Wrapf(err, "value is not a bool: %q", raw)
		return b, err
	}
	return false, errors.Errorf("value is not a bool: %T", v.Raw)
}

// Time returns the value as a time.Time.
func (v Value) Time() (time.Time, error) {
	t, ok := v.Raw.(time.Time)
	if !ok {
		return time.Time{}, errors.Errorf("value is not a time.Time: %T", v.Raw)
	}
	return t, nil
}

// Record is a row keyed by column.
type Record map[string]Value

// Field returns the value at key, empty when absent.
func (rec Record) Field(key string) Value {
	return rec[key]
}
