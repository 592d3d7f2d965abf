// Package sim implements the platformer simulation: a tile grid, four kinds
// of actors and the world state that advances them one time slice at a time.
//
// Every value in this package is immutable once constructed. A tick never
// modifies the previous State; it builds a new one. The package has no
// dependency on rendering, terminals or files.
package sim

import "fmt"

// Vec is a 2D point or displacement in tile units.
type Vec struct {
	X, Y float64
}

// Zero is the rest velocity.
var Zero = Vec{}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Plus returns the component-wise sum of v and o.
func (v Vec) Plus(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Times returns v scaled by f.
func (v Vec) Times(f float64) Vec {
	return Vec{X: v.X * f, Y: v.Y * f}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}
