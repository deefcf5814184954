package util

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/napalu/qcli/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   reflect.Type
		want  any
	}{
		{"string", "hello", reflect.TypeOf(""), "hello"},
		{"bytes", "raw", reflect.TypeOf([]byte(nil)), []byte("raw")},
		{"bool", "true", reflect.TypeOf(false), true},
		{"int", "42", reflect.TypeOf(0), 42},
		{"int hex", "0x10", reflect.TypeOf(0), 16},
		{"int8", "-8", reflect.TypeOf(int8(0)), int8(-8)},
		{"int64", "9000000000", reflect.TypeOf(int64(0)), int64(9000000000)},
		{"uint16", "65535", reflect.TypeOf(uint16(0)), uint16(65535)},
		{"float32", "1.5", reflect.TypeOf(float32(0)), float32(1.5)},
		{"float64", "-2.25", reflect.TypeOf(float64(0)), -2.25},
		{"complex128", "1+2i", reflect.TypeOf(complex128(0)), complex(1, 2)},
		{"duration", "1m30s", reflect.TypeOf(time.Duration(0)), 90 * time.Second},
		{"interface", "any", reflect.TypeOf((*any)(nil)).Elem(), "any"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertString(tt.input, tt.typ)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, got.Type())
			assert.Equal(t, tt.want, got.Interface())
		})
	}
}

func TestConvertString_Pointer(t *testing.T) {
	got, err := ConvertString("7", reflect.TypeOf((*int)(nil)))
	require.NoError(t, err)
	require.Equal(t, reflect.Pointer, got.Kind())
	assert.Equal(t, 7, got.Elem().Interface())
}

func TestConvertString_Time(t *testing.T) {
	got, err := ConvertString("2024-03-01", reflect.TypeOf(time.Time{}))
	require.NoError(t, err)
	tm := got.Interface().(time.Time)
	assert.Equal(t, 2024, tm.Year())
	assert.Equal(t, time.March, tm.Month())
	assert.Equal(t, 1, tm.Day())
}

func TestConvertString_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   reflect.Type
		want  error
	}{
		{"bool", "maybe", reflect.TypeOf(false), errs.ErrParseBool},
		{"int", "abc", reflect.TypeOf(0), errs.ErrParseInt},
		{"int float", "1.5", reflect.TypeOf(0), errs.ErrParseInt},
		{"int8 overflow", "300", reflect.TypeOf(int8(0)), errs.ErrParseOverflow},
		{"uint negative", "-1", reflect.TypeOf(uint(0)), errs.ErrParseUint},
		{"uint8 overflow", "256", reflect.TypeOf(uint8(0)), errs.ErrParseOverflow},
		{"float", "x", reflect.TypeOf(0.0), errs.ErrParseFloat},
		{"complex", "x", reflect.TypeOf(complex64(0)), errs.ErrParseComplex},
		{"duration", "soon", reflect.TypeOf(time.Duration(0)), errs.ErrParseDuration},
		{"time", "??", reflect.TypeOf(time.Time{}), errs.ErrParseTime},
		{"map", "x", reflect.TypeOf(map[string]string{}), errs.ErrUnsupportedTypeConversion},
		{"error interface", "x", reflect.TypeOf((*error)(nil)).Elem(), errs.ErrUnsupportedTypeConversion},
		{"nil", "x", nil, errs.ErrUnsupportedTypeConversion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertString(tt.input, tt.typ)
			assert.True(t, errors.Is(err, tt.want), "expected %v, got %v", tt.want, err)
		})
	}
}

func TestConvertSlice(t *testing.T) {
	got, err := ConvertSlice([]string{"1", "2", "3"}, reflect.TypeOf([]int(nil)))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.Interface())

	got, err = ConvertSlice([]string{"a", "b"}, reflect.TypeOf([][]byte(nil)))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, got.Interface())

	got, err = ConvertSlice(nil, reflect.TypeOf([]string(nil)))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	_, err = ConvertSlice([]string{"1", "x"}, reflect.TypeOf([]int(nil)))
	assert.ErrorIs(t, err, errs.ErrParseInt)

	_, err = ConvertSlice([]string{"1"}, reflect.TypeOf(0))
	assert.ErrorIs(t, err, errs.ErrUnsupportedTypeConversion)
}

func TestCanConvert(t *testing.T) {
	assert.True(t, CanConvert(reflect.TypeOf("")))
	assert.True(t, CanConvert(reflect.TypeOf(time.Time{})))
	assert.True(t, CanConvert(reflect.TypeOf((*float64)(nil))))
	assert.True(t, CanConvert(reflect.TypeOf((*any)(nil)).Elem()))
	assert.False(t, CanConvert(reflect.TypeOf(struct{}{})))
	assert.False(t, CanConvert(reflect.TypeOf([]string(nil))))
	assert.False(t, CanConvert(nil))
}

func TestParseNumeric(t *testing.T) {
	n, ok := ParseNumeric("-12")
	assert.True(t, ok)
	assert.True(t, n.IsInt)
	assert.True(t, n.IsNegative)
	assert.Equal(t, int64(-12), n.Int)

	n, ok = ParseNumeric("0.5")
	assert.True(t, ok)
	assert.True(t, n.IsFloat)
	assert.Equal(t, 0.5, n.Float)

	_, ok = ParseNumeric("twelve")
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	s := []string{"a", "b", "c"}
	Reverse(s)
	assert.Equal(t, []string{"c", "b", "a"}, s)

	var empty []int
	Reverse(empty)
	assert.Empty(t, empty)
}
