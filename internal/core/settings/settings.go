// Package settings holds the separators the finder works with and derives the
// patterns built from them
package settings

import (
	"errors"
	"io"

	"intervalparser/internal/platform/config"
	perr "intervalparser/internal/platform/errors"
	"intervalparser/internal/platform/validate"

	"gopkg.in/yaml.v3"
)

// SeparationType selects how multiple intervals in one input are separated
type SeparationType string

const (
	// SeparationSymbol splits on a literal symbol such as ","
	SeparationSymbol SeparationType = "symbol"
	// SeparationWord splits on a whole word such as "and"
	SeparationWord SeparationType = "word"
)

// Defaults
const (
	DefaultLeadingSeparator = "in"
	DefaultSymbolSeparator  = ","
)

// Settings is read-only once built. Derived patterns are computed from the
// current field values on every call
type Settings struct {
	LeadingSeparator     string         `yaml:"leading_separator" json:"leading_separator" validate:"required,notblank,max=64"`
	KeepLeadingSeparator bool           `yaml:"keep_leading_separator" json:"keep_leading_separator"`
	SeparationType       SeparationType `yaml:"separation_type" json:"separation_type" validate:"oneof=symbol word"`
	SymbolSeparator      string         `yaml:"symbol_separator" json:"symbol_separator" validate:"required_if=SeparationType symbol,max=64"`
	WordSeparator        string         `yaml:"word_separator" json:"word_separator,omitempty" validate:"required_if=SeparationType word,max=64"`
}

// Default returns the default settings: leading separator "in", symbol separation on ","
func Default() Settings {
	return Settings{
		LeadingSeparator: DefaultLeadingSeparator,
		SeparationType:   SeparationSymbol,
		SymbolSeparator:  DefaultSymbolSeparator,
	}
}

// Option changes one setting
type Option func(*Settings)

// WithLeadingSeparator sets the word that marks the end of leading data
func WithLeadingSeparator(sep string) Option {
	return func(s *Settings) { s.LeadingSeparator = sep }
}

// WithKeepLeadingSeparator keeps the separator word at the end of leading data
func WithKeepLeadingSeparator(keep bool) Option {
	return func(s *Settings) { s.KeepLeadingSeparator = keep }
}

// WithSymbolSeparator switches to symbol separation on sym
func WithSymbolSeparator(sym string) Option {
	return func(s *Settings) {
		s.SeparationType = SeparationSymbol
		s.SymbolSeparator = sym
	}
}

// WithWordSeparator switches to word separation on word
func WithWordSeparator(word string) Option {
	return func(s *Settings) {
		s.SeparationType = SeparationWord
		s.WordSeparator = word
	}
}

// New applies opts over Default and validates the result
func New(opts ...Option) (Settings, error) {
	s := Default()
	for _, o := range opts {
		o(&s)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings; failures are Validation errors naming the yaml field
func (s Settings) Validate() error {
	return validate.Struct(s)
}

// FromEnv reads settings from c over the defaults. Keys:
// LEADING_SEPARATOR, KEEP_LEADING_SEPARATOR, SEPARATION_TYPE, SYMBOL_SEPARATOR, WORD_SEPARATOR
func FromEnv(c config.Conf) (Settings, error) {
	s := Default()
	s.LeadingSeparator = c.MayString("LEADING_SEPARATOR", s.LeadingSeparator)
	s.KeepLeadingSeparator = c.MayBool("KEEP_LEADING_SEPARATOR", s.KeepLeadingSeparator)
	s.SeparationType = SeparationType(c.MayString("SEPARATION_TYPE", string(s.SeparationType)))
	// separators are read untrimmed so a single space can be configured
	if v, ok := c.Lookup("SYMBOL_SEPARATOR"); ok && v != "" {
		s.SymbolSeparator = v
	}
	if v, ok := c.Lookup("WORD_SEPARATOR"); ok && v != "" {
		s.WordSeparator = v
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Load decodes YAML settings from r over the defaults. Unknown keys are rejected;
// an empty document yields the defaults
func Load(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, perr.Wrap(err, perr.ErrorCodeInvalidArgument, "decode settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
