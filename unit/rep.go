package unit

import (
	"math"
	"reflect"
)

// Rep is the set of numeric types usable as a quantity's stored
// representation.
//
// Cross-scale integral computation is carried in int64, so unsigned counts
// above math.MaxInt64 are outside the supported range: the package-level
// operators and comparisons do not produce correct results for them. Within
// a single quantity the full unsigned range is fine.
type Rep interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the subset of Rep on which remainder is defined. Taking the
// remainder of floating-point quantities is rejected by the compiler, same
// as for the built-in % operator.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// isFloat reports whether R is a floating-point representation. The check
// goes through reflect so that defined types (~float64 etc.) are classified
// by their underlying kind.
func isFloat[R Rep]() bool {
	switch reflect.TypeOf(*new(R)).Kind() {
	case reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func repName[R Rep]() string {
	return reflect.TypeOf(*new(R)).String()
}

// maxRep and minRep produce the representation's extreme values. The
// constants are routed through variables because a constant conversion to a
// type parameter must be representable by every type in its type set.
func maxRep[R Rep]() R {
	switch reflect.TypeOf(*new(R)).Kind() {
	case reflect.Int:
		v := int64(math.MaxInt)
		return R(v)
	case reflect.Int8:
		v := int64(math.MaxInt8)
		return R(v)
	case reflect.Int16:
		v := int64(math.MaxInt16)
		return R(v)
	case reflect.Int32:
		v := int64(math.MaxInt32)
		return R(v)
	case reflect.Int64:
		v := int64(math.MaxInt64)
		return R(v)
	case reflect.Uint:
		v := uint64(math.MaxUint)
		return R(v)
	case reflect.Uint8:
		v := uint64(math.MaxUint8)
		return R(v)
	case reflect.Uint16:
		v := uint64(math.MaxUint16)
		return R(v)
	case reflect.Uint32:
		v := uint64(math.MaxUint32)
		return R(v)
	case reflect.Uint64:
		v := uint64(math.MaxUint64)
		return R(v)
	case reflect.Float32:
		v := float64(math.MaxFloat32)
		return R(v)
	default:
		v := math.MaxFloat64
		return R(v)
	}
}

func minRep[R Rep]() R {
	switch reflect.TypeOf(*new(R)).Kind() {
	case reflect.Int:
		v := int64(math.MinInt)
		return R(v)
	case reflect.Int8:
		v := int64(math.MinInt8)
		return R(v)
	case reflect.Int16:
		v := int64(math.MinInt16)
		return R(v)
	case reflect.Int32:
		v := int64(math.MinInt32)
		return R(v)
	case reflect.Int64:
		v := int64(math.MinInt64)
		return R(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return R(0)
	case reflect.Float32:
		v := float64(-math.MaxFloat32)
		return R(v)
	default:
		v := -math.MaxFloat64
		return R(v)
	}
}
