package tensor

// Numeric is the element-type constraint for Tensor[T]. It spans the
// integer and floating-point kinds the kernel engine knows how to
// reduce, add, scale and quantize -- the generic parameter stands in
// for the source's compile-time element-type parameter.
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~float32 | ~float64
}

// Float restricts Numeric to the floating-point kinds, used by kernels
// (quantize, absmax-based scaling) that only make sense for reals.
type Float interface {
	~float32 | ~float64
}

// Integer restricts Numeric to the integer kinds.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// SignedInteger restricts Integer to the signed kinds, used by the
// bit-twiddled abs() kernel.
type SignedInteger interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}
