package springcurve

// SpringPoint is a point pulled toward Target by a damped linear spring.
type SpringPoint struct {
	Pos    Vec2
	Vel    Vec2
	Target Vec2
}

// Step advances the point by one fixed timestep using explicit Euler
// integration with unit mass:
//
//	a = -k (pos - target)
//	vel = (vel + a) * damping
//	pos += vel
//
// Damping is applied after the spring force is added. The integration is
// stable for the default constants; arbitrary k/damping are not validated.
func (p *SpringPoint) Step(cfg SimulationConfig) {
	ax := -cfg.SpringK * (p.Pos.X - p.Target.X)
	ay := -cfg.SpringK * (p.Pos.Y - p.Target.Y)

	p.Vel.X += ax
	p.Vel.Y += ay

	p.Vel.X *= cfg.Damping
	p.Vel.Y *= cfg.Damping

	p.Pos.X += p.Vel.X
	p.Pos.Y += p.Vel.Y
}

// Reset places the point at rest on at: position and target are set to at
// and velocity is zeroed.
func (p *SpringPoint) Reset(at Vec2) {
	p.Pos = at
	p.Target = at
	p.Vel = Vec2{}
}
