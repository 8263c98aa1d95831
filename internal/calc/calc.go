// Package calc holds the arithmetic helpers exercised by the CI pipeline tests
// and the calc CLI command.
package calc

// Number is any Go integer or floating-point kind.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Add returns a + b. Integer overflow wraps.
func Add[T Number](a, b T) T {
	return a + b
}

// Subtract returns a - b. Integer overflow wraps.
func Subtract[T Number](a, b T) T {
	return a - b
}
