package types

import "math"

// A rotation quaternion. The camera uses it to orbit its view direction.
type Quat struct {
	V Vec3
	W float64
}

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat{W: 1.0}
}

// Create a quaternion that rotates by angle radians around the given axis.
// The axis is normalized before use; a zero axis yields the identity.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	if axis.NearZero() {
		return QuatIdent()
	}
	sin, cos := math.Sincos(angle * 0.5)
	return Quat{
		V: axis.Normalize().Mul(sin),
		W: cos,
	}
}

// Rotate a vector by the rotation this quaternion represents.
func (q Quat) Rotate(v Vec3) Vec3 {
	cross := q.V.Cross(v)
	// v + 2q_w * (q_v x v) + 2q_v x (q_v x v)
	return v.Add(cross.Mul(2 * q.W)).Add(q.V.Mul(2).Cross(cross))
}

// Compose two rotations; q.Mul(q2) applies q2 first. Not commutative.
func (q Quat) Mul(q2 Quat) Quat {
	return Quat{
		q.V.Cross(q2.V).Add(q2.V.Mul(q.W)).Add(q.V.Mul(q2.W)),
		q.W*q2.W - q.V.Dot(q2.V),
	}
}

// The quaternion norm.
func (q Quat) Len() float64 {
	return math.Sqrt(q.W*q.W + q.V.LenSq())
}

// Normalize the quaternion to a unit quaternion.
func (q Quat) Normalize() Quat {
	length := q.Len()
	if length == 0 {
		return QuatIdent()
	}
	return Quat{q.V.Mul(1 / length), q.W / length}
}
