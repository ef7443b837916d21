package colorlut

// Option configures a Colorizer during creation.
//
// Example:
//
//	// Best registered backend, identity table
//	c := colorlut.NewColorizer()
//
//	// Explicit backend and a graded source
//	c := colorlut.NewColorizer(
//		colorlut.WithBackend(gpu.NewBackend(device, queue)),
//		colorlut.WithSource(src),
//	)
type Option func(*options)

// options holds optional configuration for Colorizer creation.
type options struct {
	backend    Backend
	source     *Source
	colorSpace ColorSpace
}

// defaultOptions returns the default Colorizer options.
func defaultOptions() options {
	return options{
		backend:    nil, // resolved through BestBackend
		colorSpace: ColorSpaceGamma,
	}
}

// WithBackend sets the backend that runs the grading pass.
// Without it the highest-priority registered backend is used.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithSource sets the 2D strip LUT the table is converted from.
// Without a source the effect grades through the identity table.
func WithSource(src *Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithColorSpace sets the initial host color space.
func WithColorSpace(cs ColorSpace) Option {
	return func(o *options) {
		o.colorSpace = cs
	}
}
