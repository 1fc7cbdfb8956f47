package kernel

import (
	"math"
	"reflect"

	"zein.dev/zein/tensor"
)

// minMaxFinite returns the representable minimum and maximum for T --
// the source's max-finite/min-finite used to seed min/max reduction
// accumulators. reflect is used (rather than constant conversion
// directly to T) because T's type set spans every integer width;
// a literal conversion that overflows a narrower member of the set
// would fail to compile for the whole generic function.
func minMaxFinite[T tensor.Numeric]() (lo, hi T) {
	var zero T
	rt := reflect.TypeOf(zero)
	loV := reflect.New(rt).Elem()
	hiV := reflect.New(rt).Elem()

	switch rt.Kind() {
	case reflect.Int8:
		loV.SetInt(math.MinInt8)
		hiV.SetInt(math.MaxInt8)
	case reflect.Int16:
		loV.SetInt(math.MinInt16)
		hiV.SetInt(math.MaxInt16)
	case reflect.Int32:
		loV.SetInt(math.MinInt32)
		hiV.SetInt(math.MaxInt32)
	case reflect.Int64, reflect.Int:
		loV.SetInt(math.MinInt64)
		hiV.SetInt(math.MaxInt64)
	case reflect.Uint8:
		loV.SetUint(0)
		hiV.SetUint(math.MaxUint8)
	case reflect.Uint16:
		loV.SetUint(0)
		hiV.SetUint(math.MaxUint16)
	case reflect.Uint32:
		loV.SetUint(0)
		hiV.SetUint(math.MaxUint32)
	case reflect.Uint64, reflect.Uint:
		loV.SetUint(0)
		hiV.SetUint(math.MaxUint64)
	case reflect.Float32:
		loV.SetFloat(-math.MaxFloat32)
		hiV.SetFloat(math.MaxFloat32)
	case reflect.Float64:
		loV.SetFloat(-math.MaxFloat64)
		hiV.SetFloat(math.MaxFloat64)
	}
	return loV.Interface().(T), hiV.Interface().(T)
}

// maxIntValue returns MaxInt(T) for an integer T, used by quantize to
// scale into the destination's representable range.
func maxIntValue[T tensor.Numeric]() T {
	_, hi := minMaxFinite[T]()
	return hi
}
