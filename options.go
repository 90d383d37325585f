package perdict

import "github.com/Ricky294/perdict/codec"

// Option is a functional option that changes the behavior of [New] and
// [Open].
type Option func(*options)

// WithAutosave is an [Option] that enables or disables autosave.
//
// When autosave is enabled (the default) every mutation of the map is
// immediately followed by a full rewrite of the backing document.
func WithAutosave(enabled bool) Option {
	return func(o *options) {
		o.autosave = enabled
	}
}

// WithDefaults is an [Option] that seeds the map with default entries at
// construction time.
//
// A default is inserted only if its key is absent from the loaded document;
// existing document data always wins.
func WithDefaults(defaults map[string]Value) Option {
	return func(o *options) {
		o.defaults = defaults
	}
}

// WithCodec is an [Option] that sets the codec used to serialize the map.
//
// The default codec encodes the map as a compact JSON object.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

type options struct {
	autosave bool
	defaults map[string]Value
	codec    codec.Codec
}

func resolveOptions(opts []Option) options {
	o := options{
		autosave: true,
		codec:    codec.NewJSON(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
