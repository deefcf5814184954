package util

import (
	"reflect"
	"strconv"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/qcli/errs"
)

var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
	bytesType    = reflect.TypeOf([]byte(nil))
	stringType   = reflect.TypeOf("")
)

// ConvertString converts value to a reflect.Value of type t. Strings, byte slices,
// booleans, integers, unsigned integers, floats, complex numbers, time.Time and
// time.Duration are supported, as are pointers to any of those.
func ConvertString(value string, t reflect.Type) (reflect.Value, error) {
	if t == nil {
		return reflect.Value{}, errs.ErrUnsupportedTypeConversion.WithArgs(t)
	}

	switch t {
	case durationType:
		d, err := time.ParseDuration(value)
		if err != nil {
			return reflect.Value{}, errs.ErrParseDuration.WithArgs(value)
		}
		return reflect.ValueOf(d), nil
	case timeType:
		tm, err := dateparse.ParseLocal(value)
		if err != nil {
			return reflect.Value{}, errs.ErrParseTime.WithArgs(value)
		}
		return reflect.ValueOf(tm), nil
	case bytesType:
		return reflect.ValueOf([]byte(value)), nil
	}

	out := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.String:
		out.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return reflect.Value{}, errs.ErrParseBool.WithArgs(value)
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		num, ok := ParseNumeric(value)
		if !ok || !num.IsInt {
			return reflect.Value{}, errs.ErrParseInt.WithArgs(value)
		}
		if out.OverflowInt(num.Int) {
			return reflect.Value{}, errs.ErrParseOverflow.WithArgs(value)
		}
		out.SetInt(num.Int)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return reflect.Value{}, errs.ErrParseUint.WithArgs(value)
		}
		if out.OverflowUint(u) {
			return reflect.Value{}, errs.ErrParseOverflow.WithArgs(value)
		}
		out.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, t.Bits())
		if err != nil {
			return reflect.Value{}, errs.ErrParseFloat.WithArgs(value)
		}
		out.SetFloat(f)
	case reflect.Complex64, reflect.Complex128:
		c, err := strconv.ParseComplex(value, t.Bits())
		if err != nil {
			return reflect.Value{}, errs.ErrParseComplex.WithArgs(value)
		}
		out.SetComplex(c)
	case reflect.Pointer:
		elem, err := ConvertString(value, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(t.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	case reflect.Interface:
		if !stringType.AssignableTo(t) {
			return reflect.Value{}, errs.ErrUnsupportedTypeConversion.WithArgs(t)
		}
		out.Set(reflect.ValueOf(value))
	default:
		return reflect.Value{}, errs.ErrUnsupportedTypeConversion.WithArgs(t)
	}

	return out, nil
}

// ConvertSlice converts every value to the element type of the slice type t.
func ConvertSlice(values []string, t reflect.Type) (reflect.Value, error) {
	if t == nil || t.Kind() != reflect.Slice {
		return reflect.Value{}, errs.ErrUnsupportedTypeConversion.WithArgs(t)
	}

	out := reflect.MakeSlice(t, 0, len(values))
	for _, v := range values {
		elem, err := ConvertString(v, t.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, elem)
	}

	return out, nil
}

// CanConvert reports whether ConvertString supports t.
func CanConvert(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t {
	case durationType, timeType, bytesType:
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Pointer:
		return CanConvert(t.Elem())
	case reflect.Interface:
		return stringType.AssignableTo(t)
	}

	return false
}
