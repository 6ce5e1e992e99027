// Package core provides fundamental types and utilities for the arena
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep the simulation logic pure and testable.
package core

import "fmt"

// Coord represents a 2D grid coordinate.
// X increases to the right, Y increases downward (screen coordinates).
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns a new Coord one cell in the given direction.
// No bounds checking happens here: an out-of-bounds result is legal and is
// how a wall crash gets its death cell reported.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return Abs(c.X-other.X) + Abs(c.Y-other.Y)
}

// Dir represents a movement direction on the grid.
// The ordinal encoding is load-bearing: (d+1)%4 is a turn to the right and
// (d+3)%4 a turn to the left of the current facing.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the (dx, dy) offset for one step in this direction.
func (d Dir) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// TurnRight returns the direction 90 degrees clockwise.
func (d Dir) TurnRight() Dir {
	return (d + 1) % 4
}

// TurnLeft returns the direction 90 degrees counter-clockwise.
func (d Dir) TurnLeft() Dir {
	return (d + 3) % 4
}

// Opposite returns the reversed direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDir converts a direction name ("up", "right", "down", "left")
// into a Dir. Used by the YAML config loader.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	default:
		return DirUp, fmt.Errorf("core: unknown direction %q", s)
	}
}

// Arena describes the immutable bounds of the playing field.
type Arena struct {
	Width  int
	Height int
}

// Contains returns true iff the coordinate lies within [0,Width) x [0,Height).
func (a Arena) Contains(c Coord) bool {
	return c.X >= 0 && c.X < a.Width && c.Y >= 0 && c.Y < a.Height
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
