package box2d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

/// A 2D column vector.
type B2Vec2 = mgl64.Vec2

func MakeB2Vec2(xIn, yIn float64) B2Vec2 {
	return B2Vec2{xIn, yIn}
}

/// Convert this vector into a unit vector. Returns the length.
/// Vectors shorter than epsilon are left untouched and report zero.
func B2Vec2Normalize(v *B2Vec2) float64 {
	length := v.Len()
	if length < B2_epsilon {
		return 0.0
	}

	*v = v.Mul(1.0 / length)
	return length
}

func B2Vec2Cross(a, b B2Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

/// Perform the cross product on a vector and a scalar. In 2D this produces
/// a vector.
func B2Vec2CrossVectorScalar(a B2Vec2, s float64) B2Vec2 {
	return B2Vec2{s * a[1], -s * a[0]}
}

func B2Vec2DistanceSquared(a, b B2Vec2) float64 {
	c := a.Sub(b)
	return c.Dot(c)
}

func B2Vec2Min(a, b B2Vec2) B2Vec2 {
	return B2Vec2{math.Min(a[0], b[0]), math.Min(a[1], b[1])}
}

func B2Vec2Max(a, b B2Vec2) B2Vec2 {
	return B2Vec2{math.Max(a[0], b[0]), math.Max(a[1], b[1])}
}

/// Rotation
type B2Rot struct {
	/// Sine and cosine
	S, C float64
}

func MakeB2Rot() B2Rot {
	return B2Rot{S: 0, C: 1}
}

/// Initialize from an angle in radians
func MakeB2RotFromAngle(anglerad float64) B2Rot {
	return B2Rot{
		S: math.Sin(anglerad),
		C: math.Cos(anglerad),
	}
}

func (r B2Rot) GetAngle() float64 {
	return math.Atan2(r.S, r.C)
}

/// A transform contains translation and rotation. It is used to represent
/// the position and orientation of rigid frames.
type B2Transform struct {
	P B2Vec2
	Q B2Rot
}

func MakeB2Transform() B2Transform {
	return B2Transform{Q: MakeB2Rot()}
}

func MakeB2TransformFromAngle(position B2Vec2, anglerad float64) B2Transform {
	return B2Transform{
		P: position,
		Q: MakeB2RotFromAngle(anglerad),
	}
}

/// Transpose multiply two rotations: qT * r
func B2RotMulT(q, r B2Rot) B2Rot {
	return B2Rot{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

/// Rotate a vector
func B2RotVec2Mul(q B2Rot, v B2Vec2) B2Vec2 {
	return B2Vec2{q.C*v[0] - q.S*v[1], q.S*v[0] + q.C*v[1]}
}

/// Inverse rotate a vector
func B2RotVec2MulT(q B2Rot, v B2Vec2) B2Vec2 {
	return B2Vec2{q.C*v[0] + q.S*v[1], -q.S*v[0] + q.C*v[1]}
}

func B2TransformVec2Mul(T B2Transform, v B2Vec2) B2Vec2 {
	return B2RotVec2Mul(T.Q, v).Add(T.P)
}

func B2TransformVec2MulT(T B2Transform, v B2Vec2) B2Vec2 {
	return B2RotVec2MulT(T.Q, v.Sub(T.P))
}

// v2 = A.q' * (B.q * v1 + B.p - A.p)
//    = A.q' * B.q * v1 + A.q' * (B.p - A.p)
func B2TransformMulT(A, B B2Transform) B2Transform {
	return B2Transform{
		Q: B2RotMulT(A.Q, B.Q),
		P: B2RotVec2MulT(A.Q, B.P.Sub(A.P)),
	}
}
