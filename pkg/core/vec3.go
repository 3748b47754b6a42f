package core

import (
	"fmt"
	"math"
)

// machineEpsilon is the gap between 1.0 and the next float64
const machineEpsilon = 0x1p-52

// Vec3 is the shared three-component representation behind Point, Direction
// and Colour. Code outside this package should use the role types.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar. Division by zero yields
// non-finite components.
func (v Vec3) Divide(scalar float64) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{
		X: -v.X,
		Y: -v.Y,
		Z: -v.Z,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// IsZero reports whether every component is below machine epsilon in
// magnitude.
func (v Vec3) IsZero() bool {
	return math.Abs(v.X) < machineEpsilon && math.Abs(v.Y) < machineEpsilon && math.Abs(v.Z) < machineEpsilon
}

// Index returns component i (0 = X, 1 = Y, 2 = Z). Any other index is a
// programming error and panics.
func (v Vec3) Index(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("core: vector index %d out of range [0, 2]", i))
}

// Point is an absolute position in space.
type Point Vec3

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Add moves the point along a direction
func (p Point) Add(d Direction) Point {
	return Point(Vec3(p).Add(Vec3(d)))
}

// Towards returns the direction from p to target (target - p).
func (p Point) Towards(target Point) Direction {
	return Direction(Vec3(target).Subtract(Vec3(p)))
}

// IsZero reports whether the point is (numerically) the origin
func (p Point) IsZero() bool {
	return Vec3(p).IsZero()
}

// Index returns component i, panicking outside [0, 2]
func (p Point) Index(i int) float64 {
	return Vec3(p).Index(i)
}

// Direction is a displacement or orientation. It is not unit length unless
// produced by Unit.
type Direction Vec3

// NewDirection creates a new Direction
func NewDirection(x, y, z float64) Direction {
	return Direction{X: x, Y: y, Z: z}
}

// Add returns the sum of two directions
func (d Direction) Add(other Direction) Direction {
	return Direction(Vec3(d).Add(Vec3(other)))
}

// Subtract returns the difference of two directions
func (d Direction) Subtract(other Direction) Direction {
	return Direction(Vec3(d).Subtract(Vec3(other)))
}

// Multiply scales the direction
func (d Direction) Multiply(scalar float64) Direction {
	return Direction(Vec3(d).Multiply(scalar))
}

// Divide divides every component by scalar
func (d Direction) Divide(scalar float64) Direction {
	return Direction(Vec3(d).Divide(scalar))
}

// Negate flips the direction
func (d Direction) Negate() Direction {
	return Direction(Vec3(d).Negate())
}

// Length returns the Euclidean norm
func (d Direction) Length() float64 {
	return Vec3(d).Length()
}

// LengthSquared returns the squared norm
func (d Direction) LengthSquared() float64 {
	return Vec3(d).LengthSquared()
}

// Dot returns the dot product of two directions
func (d Direction) Dot(other Direction) float64 {
	return Vec3(d).Dot(Vec3(other))
}

// Cross returns the cross product of two directions
func (d Direction) Cross(other Direction) Direction {
	return Direction(Vec3(d).Cross(Vec3(other)))
}

// Unit returns d / |d|. A zero-length direction produces NaN components.
func (d Direction) Unit() Direction {
	return d.Divide(d.Length())
}

// IsZero reports whether every component is below machine epsilon
func (d Direction) IsZero() bool {
	return Vec3(d).IsZero()
}

// Index returns component i, panicking outside [0, 2]
func (d Direction) Index(i int) float64 {
	return Vec3(d).Index(i)
}

// Reflect mirrors d about the normal n: d - 2(d·n)n
func (d Direction) Reflect(n Direction) Direction {
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refract bends the unit direction d through a surface with unit normal n
// using Snell's law, where etaRatio is eta_incident / eta_transmitted.
// The caller must rule out total internal reflection first.
func (d Direction) Refract(n Direction, etaRatio float64) Direction {
	cosTheta := math.Min(d.Negate().Dot(n), 1.0)
	perpendicular := d.Add(n.Multiply(cosTheta)).Multiply(etaRatio)
	parallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - perpendicular.LengthSquared())))
	return perpendicular.Add(parallel)
}

// Colour is a linear-light RGB value stored in X (red), Y (green) and Z (blue).
type Colour Vec3

// NewColour creates a new Colour
func NewColour(r, g, b float64) Colour {
	return Colour{X: r, Y: g, Z: b}
}

// Black is the zero colour
var Black = Colour{}

// White is full intensity on every channel
var White = Colour{X: 1, Y: 1, Z: 1}

// Add returns the sum of two colours
func (c Colour) Add(other Colour) Colour {
	return Colour(Vec3(c).Add(Vec3(other)))
}

// Multiply scales the colour
func (c Colour) Multiply(scalar float64) Colour {
	return Colour(Vec3(c).Multiply(scalar))
}

// Divide divides every channel by scalar
func (c Colour) Divide(scalar float64) Colour {
	return Colour(Vec3(c).Divide(scalar))
}

// Attenuate multiplies two colours channel by channel
func (c Colour) Attenuate(other Colour) Colour {
	return Colour(Vec3(c).MultiplyVec(Vec3(other)))
}

// Lerp blends from c (t = 0) to other (t = 1)
func (c Colour) Lerp(other Colour, t float64) Colour {
	return c.Multiply(1.0 - t).Add(other.Multiply(t))
}

// LinearToGamma applies the gamma 2 approximation (square root per channel)
func (c Colour) LinearToGamma() Colour {
	return Colour{
		X: math.Sqrt(c.X),
		Y: math.Sqrt(c.Y),
		Z: math.Sqrt(c.Z),
	}
}

// Luminance returns the perceptual luminance of the colour
// Uses standard luminance weights: 0.299*R + 0.587*G + 0.114*B
func (c Colour) Luminance() float64 {
	return 0.299*c.X + 0.587*c.Y + 0.114*c.Z
}

// IsZero reports whether every channel is below machine epsilon
func (c Colour) IsZero() bool {
	return Vec3(c).IsZero()
}

// Index returns channel i, panicking outside [0, 2]
func (c Colour) Index(i int) float64 {
	return Vec3(c).Index(i)
}
