package meshbuilder

// Option customizes a constructor's coordinate placement by mutating a
// config before vertices are emitted. Later options override earlier ones.
type Option func(*config)

// config holds the resolved placement parameters shared by every
// constructor in this package.
type config struct {
	origin  [3]float64
	spacing [3]float64
}

// newConfig returns a config seeded with defaults, then applies opts in
// order.
func newConfig(opts ...Option) config {
	c := config{spacing: [3]float64{defaultSpacing, defaultSpacing, defaultSpacing}}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithOrigin translates every generated coordinate by (x, y, z).
func WithOrigin(x, y, z float64) Option {
	return func(c *config) { c.origin = [3]float64{x, y, z} }
}

// WithSpacing scales the unit step between adjacent vertices along each
// axis. A zero component leaves that axis at the default spacing.
func WithSpacing(dx, dy, dz float64) Option {
	return func(c *config) {
		if dx != 0 {
			c.spacing[0] = dx
		}
		if dy != 0 {
			c.spacing[1] = dy
		}
		if dz != 0 {
			c.spacing[2] = dz
		}
	}
}
