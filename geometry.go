package springcurve

// Evaluate returns the point at parameter t on the cubic Bézier defined by
// p0..p3. t is not clamped; values outside [0, 1] extrapolate the polynomial.
func Evaluate(t float64, p0, p1, p2, p3 Vec2) Vec2 {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	return Vec2{
		X: u2*u*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t2*t*p3.X,
		Y: u2*u*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t2*t*p3.Y,
	}
}

// Tangent returns the derivative of the cubic Bézier at t. The result is not
// unit length; pass it to Normalize for a direction.
func Tangent(t float64, p0, p1, p2, p3 Vec2) Vec2 {
	u := 1 - t
	return Vec2{
		X: 3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		Y: 3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// Normalize returns v scaled to unit length. A zero vector is divided by 1
// instead of 0 and comes back as the zero vector.
func Normalize(v Vec2) Vec2 {
	ln := v.Len()
	if ln == 0 {
		ln = 1
	}
	return Vec2{v.X / ln, v.Y / ln}
}

// Curve is the single cubic segment drawn by a Scene: two fixed endpoints and
// two spring-driven interior control points.
type Curve struct {
	P0 Vec2
	B  SpringPoint
	C  SpringPoint
	P3 Vec2
}

// Points returns the control points in curve order: P0, B, C, P3.
func (c *Curve) Points() [4]Vec2 {
	return [4]Vec2{c.P0, c.B.Pos, c.C.Pos, c.P3}
}

// At evaluates the curve at t.
func (c *Curve) At(t float64) Vec2 {
	return Evaluate(t, c.P0, c.B.Pos, c.C.Pos, c.P3)
}

// TangentAt returns the (non-normalized) derivative of the curve at t.
func (c *Curve) TangentAt(t float64) Vec2 {
	return Tangent(t, c.P0, c.B.Pos, c.C.Pos, c.P3)
}

// Bounds returns the bounding box of the control polygon. A cubic Bézier
// never leaves this box for t in [0, 1].
func (c *Curve) Bounds() Rect {
	pts := c.Points()
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
