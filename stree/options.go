package stree

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures a Tree. Zero values mean "unbounded" and "no logging".
type Options struct {
	// MaxTemplateLength bounds the template. An Append that would make the
	// template length reach or exceed it fails with ErrTemplateTooLong. Zero
	// disables the bound, open edges track the template length regardless.
	MaxTemplateLength int

	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// Options record and ignore options that don't apply to them.
type Option func(any)

func WithMaxTemplateLength(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.MaxTemplateLength = n
		}
	}
}

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}
