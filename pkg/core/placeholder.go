package core

import "sync"

// PlaceholderBuilder creates the widget shown in place of a subtree that
// failed to resolve. It receives the failed tag and the failure.
type PlaceholderBuilder func(tag string, err error) Widget

var (
	placeholderBuilder PlaceholderBuilder = DefaultPlaceholderBuilder
	placeholderMu      sync.RWMutex
)

// SetPlaceholderBuilder configures the global placeholder builder.
// Pass nil to restore the default builder.
func SetPlaceholderBuilder(builder PlaceholderBuilder) {
	placeholderMu.Lock()
	defer placeholderMu.Unlock()
	if builder == nil {
		placeholderBuilder = DefaultPlaceholderBuilder
	} else {
		placeholderBuilder = builder
	}
}

// GetPlaceholderBuilder returns the current placeholder builder.
func GetPlaceholderBuilder() PlaceholderBuilder {
	placeholderMu.RLock()
	defer placeholderMu.RUnlock()
	return placeholderBuilder
}

// DefaultPlaceholderBuilder returns a Placeholder carrying the failure.
func DefaultPlaceholderBuilder(tag string, err error) Widget {
	return Placeholder{Tag: tag, Err: err}
}

func placeholderFor(tag string, err error) Widget {
	if w := GetPlaceholderBuilder()(tag, err); w != nil {
		return w
	}
	return Placeholder{Tag: tag, Err: err}
}
