package render

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-suffixtree/stree"
)

type Options struct {
	// Name is the DOT graph name.
	Name string
	// Highlight replaces the label of the listed nodes and fills them red.
	Highlight map[stree.Ref]string
	// Format renders one symbol.
	Format func(sym any) string

	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// Options record and ignore options that don't apply to them.
type Option func(any)

func WithName(name string) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Name = name
		}
	}
}

func WithHighlight(ref stree.Ref, label string) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			if o.Highlight == nil {
				o.Highlight = map[stree.Ref]string{}
			}
			o.Highlight[ref] = label
		}
	}
}

func WithSymbolFormatter(format func(sym any) string) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Format = format
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

func newOptions(opts []Option) Options {
	o := Options{Name: "stree", Format: formatSymbol}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// formatSymbol prints bytes and runes as characters.
func formatSymbol(sym any) string {
	switch v := sym.(type) {
	case byte:
		return string(rune(v))
	case rune:
		return string(v)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
