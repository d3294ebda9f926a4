package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translation(1, 2, 3)
	m2 := RotationY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulTuple(b *testing.B) {
	m := Translation(1, 2, 3).Mul(RotationY(0.5))
	v := Point(1, 2, 3)

	for b.Loop() {
		_ = m.MulTuple(v)
	}
}

func BenchmarkMat4Inverse(b *testing.B) {
	m := Translation(1, 2, 3).Mul(RotationY(0.5)).Mul(Scaling(2, 2, 2))

	for b.Loop() {
		_, _ = m.Inverse()
	}
}

func BenchmarkTupleNormalize(b *testing.B) {
	v := Vector(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkTupleCross(b *testing.B) {
	v1 := Vector(1, 2, 3)
	v2 := Vector(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkTupleDot(b *testing.B) {
	v1 := Vector(1, 2, 3)
	v2 := Vector(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkViewTransform(b *testing.B) {
	from := Point(0, 0, 10)
	to := Point(0, 0, 0)
	up := Vector(0, 1, 0)

	for b.Loop() {
		_ = ViewTransform(from, to, up)
	}
}
