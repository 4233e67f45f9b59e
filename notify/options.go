package notify

// Option signal option
type Option func(s *Signal)

// Options represents signal options
type Options []Option

// Apply applies options
func (o Options) Apply(s *Signal) {
	if len(o) == 0 {
		return
	}
	for _, opt := range o {
		opt(s)
	}
}

// WithPanicHandler recovers listener panics and hands them to the handler,
// remaining listeners are still called.
func WithPanicHandler(handler PanicHandler) Option {
	return func(s *Signal) {
		s.onPanic = handler
	}
}
