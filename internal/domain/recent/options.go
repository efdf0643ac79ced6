package recent

// Option applies a configuration option to a List.
type Option func(*mruList)

// WithCapacity sets how many ids the list keeps. Values below one are ignored.
func WithCapacity(n int) Option {
	return func(l *mruList) {
		if n > 0 {
			l.capacity = n
		}
	}
}
