package dictology

import (
	"io"
	"log/slog"

	"github.com/viant/dictology/conv"
	"github.com/viant/dictology/resolver"
	"github.com/viant/dictology/types"
	"golang.org/x/text/language"
)

// EnumHandling controls how enum values are written
type EnumHandling int

const (
	// EnumAsName writes registered enum names, values without a name stay numeric
	EnumAsName EnumHandling = iota
	// EnumAsValue writes enum underlying integer value
	EnumAsValue
)

// DateHandling controls temporal field set
type DateHandling int

const (
	// DateFull writes calendar fields and raw ticks
	DateFull DateHandling = iota
	// DateMinimal writes raw ticks (and calendar kind or offset) only
	DateMinimal
)

// UnknownKeyPolicy controls decoding of keys without matching member
type UnknownKeyPolicy int

const (
	// IgnoreUnknownKeys skips keys without matching member
	IgnoreUnknownKeys UnknownKeyPolicy = iota
	// ErrorOnUnknownKeys rejects keys without matching member
	ErrorOnUnknownKeys
)

// sharedResolver guards the process wide default resolver from release
type sharedResolver struct {
	resolver.Resolver
}

// Release is a no-op for the shared default resolver
func (r *sharedResolver) Release() error {
	return nil
}

var defaultResolver resolver.Resolver = &sharedResolver{Resolver: resolver.NewDefault()}

type (
	// Settings represents conversion settings, it is immutable once created
	Settings struct {
		resolver     resolver.Resolver
		converters   *Converters
		culture      language.Tag
		enumHandling EnumHandling
		dateHandling DateHandling
		guidHandling types.GUIDFormat
		adapters     []conv.TypeAdapter
		unknownKeys  UnknownKeyPolicy
		logger       *slog.Logger
		coercer      *conv.Coercer
	}

	// Option represents settings option
	Option func(s *Settings)
)

// Resolver returns member resolver.
// Settings created without WithResolver share one default resolver whose Release is a no-op.
func (s *Settings) Resolver() resolver.Resolver {
	return s.resolver
}

// Converters returns converter registry
func (s *Settings) Converters() *Converters {
	return s.converters
}

// Culture returns culture used for numeric text
func (s *Settings) Culture() language.Tag {
	return s.culture
}

// EnumHandling returns enum handling
func (s *Settings) EnumHandling() EnumHandling {
	return s.enumHandling
}

// DateHandling returns temporal handling
func (s *Settings) DateHandling() DateHandling {
	return s.dateHandling
}

// GUIDHandling returns identifier text layout
func (s *Settings) GUIDHandling() types.GUIDFormat {
	return s.guidHandling
}

// UnknownKeys returns unknown key policy
func (s *Settings) UnknownKeys() UnknownKeyPolicy {
	return s.unknownKeys
}

// Logger returns settings logger
func (s *Settings) Logger() *slog.Logger {
	return s.logger
}

// Coercer returns value coercer configured with settings culture and adapters
func (s *Settings) Coercer() *conv.Coercer {
	return s.coercer
}

// WithResolver sets member resolver, nil restores the plain reflection resolver
func WithResolver(r resolver.Resolver) Option {
	return func(s *Settings) {
		if r == nil {
			r = defaultResolver
		}
		s.resolver = r
	}
}

// WithConverters sets converter registry
func WithConverters(converters *Converters) Option {
	return func(s *Settings) {
		if converters != nil {
			s.converters = converters
		}
	}
}

// WithCulture sets culture for numeric text coercion
func WithCulture(culture language.Tag) Option {
	return func(s *Settings) {
		s.culture = culture
	}
}

// WithEnumHandling sets enum handling
func WithEnumHandling(handling EnumHandling) Option {
	return func(s *Settings) {
		s.enumHandling = handling
	}
}

// WithDateHandling sets temporal handling
func WithDateHandling(handling DateHandling) Option {
	return func(s *Settings) {
		s.dateHandling = handling
	}
}

// WithGUIDHandling sets identifier text layout
func WithGUIDHandling(format types.GUIDFormat) Option {
	return func(s *Settings) {
		s.guidHandling = format
	}
}

// WithAdapters sets type adapters consulted by value coercion
func WithAdapters(adapters ...conv.TypeAdapter) Option {
	return func(s *Settings) {
		s.adapters = append(s.adapters, adapters...)
	}
}

// WithUnknownKeyPolicy sets unknown key policy
func WithUnknownKeyPolicy(policy UnknownKeyPolicy) Option {
	return func(s *Settings) {
		s.unknownKeys = policy
	}
}

// WithLogger sets logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSettings creates settings
func NewSettings(opts ...Option) *Settings {
	ret := &Settings{
		resolver:     defaultResolver,
		culture:      language.Und,
		guidHandling: types.GUIDDashed,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.converters == nil {
		ret.converters = DefaultConverters()
	}
	ret.coercer = conv.NewCoercer(conv.Options{Culture: ret.culture, Adapters: ret.adapters})
	return ret
}

func settingsOrDefault(s *Settings) *Settings {
	if s == nil {
		return NewSettings()
	}
	return s
}
