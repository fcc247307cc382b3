// Package vec implements dimension-generic vector algebra over a scalar field.
package vec

// Field is the arithmetic of a scalar type usable as vector components.
//
// Implementations are stateless strategy values. Division by Zero() is not
// checked.
type Field[F any] interface {
	Add(a, b F) F
	Sub(a, b F) F
	Mul(a, b F) F
	Div(a, b F) F
	Neg(a F) F
	Zero() F
	One() F
	// Equal is exact structural equality, without tolerance.
	Equal(a, b F) bool
}

// Float64 is the field of float64 values.
type Float64 struct{}

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Div(a, b float64) float64 { return a / b }
func (Float64) Neg(a float64) float64 { return -a }
func (Float64) Zero() float64 { return 0 }
func (Float64) One() float64 { return 1 }
func (Float64) Equal(a, b float64) bool { return a == b }

// Float32 is the field of float32 values.
type Float32 struct{}

func (Float32) Add(a, b float32) float32 { return a + b }
func (Float32) Sub(a, b float32) float32 { return a - b }
func (Float32) Mul(a, b float32) float32 { return a * b }
func (Float32) Div(a, b float32) float32 { return a / b }
func (Float32) Neg(a float32) float32 { return -a }
func (Float32) Zero() float32 { return 0 }
func (Float32) One() float32 { return 1 }
func (Float32) Equal(a, b float32) bool { return a == b }
