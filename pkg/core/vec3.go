package core

import "math"

// Scalar is the set of numeric types a Vec3 can be built from
type Scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Vec3 represents a 3D vector over a numeric scalar type
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Point is a position in 3D space
type Point = Vec3[float64]

// Color holds RGB components, nominally in [0, 1]
type Color = Vec3[float64]

// NewVec3 creates a new float64 Vec3
func NewVec3(x, y, z float64) Vec3[float64] {
	return Vec3[float64]{X: x, Y: y, Z: z}
}

// NewVec3Of creates a new Vec3 of any scalar type
func NewVec3Of[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3[T]) Subtract(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the negative of the vector
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3[T]) Multiply(scalar T) Vec3[T] {
	return Vec3[T]{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar.
// Dividing a float vector by zero yields Inf/NaN components.
func (v Vec3[T]) Divide(scalar T) Vec3[T] {
	return Vec3[T]{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// AddAssign adds other to v in place
func (v *Vec3[T]) AddAssign(other Vec3[T]) {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
}

// SubtractAssign subtracts other from v in place
func (v *Vec3[T]) SubtractAssign(other Vec3[T]) {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
}

// MultiplyAssign scales v in place
func (v *Vec3[T]) MultiplyAssign(scalar T) {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
}

// DivideAssign divides v by a scalar in place
func (v *Vec3[T]) DivideAssign(scalar T) {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
}

// Dot returns the dot product of two vectors
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude of the vector
func (v Vec3[T]) Length() float64 {
	return math.Sqrt(float64(v.Dot(v)))
}

// Normalize returns a unit vector in the same direction.
// The zero vector has no direction and normalizes to NaN components.
func (v Vec3[T]) Normalize() Vec3[float64] {
	length := v.Length()
	return Vec3[float64]{
		X: float64(v.X) / length,
		Y: float64(v.Y) / length,
		Z: float64(v.Z) / length,
	}
}

// Clamp returns a vector with components clamped to [minVal, maxVal]
func (v Vec3[T]) Clamp(minVal, maxVal T) Vec3[T] {
	return Vec3[T]{
		X: max(minVal, min(maxVal, v.X)),
		Y: max(minVal, min(maxVal, v.Y)),
		Z: max(minVal, min(maxVal, v.Z)),
	}
}

// Lerp linearly interpolates from v (t = 0) to other (t = 1)
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return v.Multiply(1 - t).Add(other.Multiply(t))
}
