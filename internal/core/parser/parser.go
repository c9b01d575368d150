// Package parser turns a bare interval description into a duration
package parser

import (
	"intervalparser/internal/core/duration"
	"intervalparser/internal/core/normalize"
	"intervalparser/internal/core/pattern"
	perr "intervalparser/internal/platform/errors"
)

// Normalizer rewrites abbreviated time parts before matching
type Normalizer interface {
	Normalize(s string) string
}

// Parser is safe for concurrent use
type Parser struct {
	norm Normalizer
}

// Option configures a Parser
type Option func(*Parser)

// WithNormalizer replaces the default normalizer
func WithNormalizer(n Normalizer) Option {
	return func(p *Parser) {
		if n != nil {
			p.norm = n
		}
	}
}

// New constructs a Parser
func New(opts ...Option) *Parser {
	p := &Parser{norm: normalize.New()}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse normalizes input and requires all of it to be an interval
func (p *Parser) Parse(input string) (duration.Duration, error) {
	m, ok := pattern.MatchInterval(p.norm.Normalize(input))
	if !ok {
		return duration.Duration{}, perr.WithOp(
			perr.Formatf("interval", "%q is not an interval", input), "parse")
	}
	return duration.FromParts(m.Parts), nil
}
