package core

type Rect struct {
	X, Y          float64
	Width, Height float64
}

type Circle struct {
	X, Y   float64
	Radius float64
}

// Overlaps compares the circle's bounding box with the rectangle on both axes.
// It is not an exact distance test: a circle near a corner counts as touching.
func Overlaps(c Circle, r Rect) bool {
	return c.X-c.Radius < r.X+r.Width &&
		c.X+c.Radius > r.X &&
		c.Y-c.Radius < r.Y+r.Height &&
		c.Y+c.Radius > r.Y
}
