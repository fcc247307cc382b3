package vec

import (
	"fmt"
)

// Vector is a fixed-dimension vector with components of type F.
type Vector[F any] interface {
	Component(i int) F
}

// Space is the algebra of Dim-dimensional vectors of type V over Field.
//
// Make builds a V from exactly Dim components, in basis order. Every
// operation is component-wise except Dot.
type Space[F any, V Vector[F]] struct {
	Field Field[F]
	Dim   int
	Make  func(c []F) V
}

func (s Space[F, V]) checkIndex(i int) {
	if i < 0 || s.Dim <= i {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, s.Dim))
	}
}

// Component returns the i-th component of v.
// It panics if i is out of [0, Dim).
func (s Space[F, V]) Component(v V, i int) F {
	s.checkIndex(i)
	return v.Component(i)
}

// Components returns the components of v in basis order.
func (s Space[F, V]) Components(v V) []F {
	c := make([]F, s.Dim)
	for i := range c {
		c[i] = v.Component(i)
	}
	return c
}

// New constructs a vector from exactly Dim components.
func (s Space[F, V]) New(c []F) V {
	if len(c) != s.Dim {
		panic(fmt.Sprintf("vec: %d components given to %d-dimensional space", len(c), s.Dim))
	}
	return s.Make(c)
}

func (s Space[F, V]) Zero() V {
	c := make([]F, s.Dim)
	for i := range c {
		c[i] = s.Field.Zero()
	}
	return s.Make(c)
}

// Unit returns the i-th standard basis vector.
func (s Space[F, V]) Unit(i int) V {
	s.checkIndex(i)
	c := make([]F, s.Dim)
	for j := range c {
		c[j] = s.Field.Zero()
	}
	c[i] = s.Field.One()
	return s.Make(c)
}

func (s Space[F, V]) Scale(v V, f F) V {
	return s.Unary(v, func(x F) F { return s.Field.Mul(x, f) })
}

// Dot returns the sum of the pairwise component products.
func (s Space[F, V]) Dot(a, b V) F {
	sum := s.Field.Zero()
	for i := 0; i < s.Dim; i++ {
		sum = s.Field.Add(sum, s.Field.Mul(a.Component(i), b.Component(i)))
	}
	return sum
}

func (s Space[F, V]) NormSquared(v V) F {
	return s.Dot(v, v)
}

// Binary applies op to each pair of components of a and b.
func (s Space[F, V]) Binary(a, b V, op func(x, y F) F) V {
	c := make([]F, s.Dim)
	for i := range c {
		c[i] = op(a.Component(i), b.Component(i))
	}
	return s.Make(c)
}

// Unary applies op to each component of v.
func (s Space[F, V]) Unary(v V, op func(x F) F) V {
	c := make([]F, s.Dim)
	for i := range c {
		c[i] = op(v.Component(i))
	}
	return s.Make(c)
}

func (s Space[F, V]) Add(a, b V) V { return s.Binary(a, b, s.Field.Add) }
func (s Space[F, V]) Sub(a, b V) V { return s.Binary(a, b, s.Field.Sub) }
func (s Space[F, V]) Mul(a, b V) V { return s.Binary(a, b, s.Field.Mul) }
func (s Space[F, V]) Neg(v V) V { return s.Unary(v, s.Field.Neg) }

// Equal reports whether all components of a and b are equal in the Field.
func (s Space[F, V]) Equal(a, b V) bool {
	for i := 0; i < s.Dim; i++ {
		if !s.Field.Equal(a.Component(i), b.Component(i)) {
			return false
		}
	}
	return true
}
