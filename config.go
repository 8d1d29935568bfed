package dictology

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hengadev/errsx"
	"github.com/viant/dictology/resolver"
	"github.com/viant/dictology/types"
	"github.com/viant/tagly/format/text"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Resolver strategy names
const (
	ResolverDefault  = "default"
	ResolverContract = "contract"
	ResolverWeb      = "web"
	ResolverFormat   = "format"
)

// EnvPrefix prefixes environment overrides, i.e. DICTOLOGY_CULTURE
const EnvPrefix = "DICTOLOGY_"

// Config represents serializable conversion settings
type Config struct {
	Resolver         string   `yaml:"resolver"`
	TagNames         []string `yaml:"tag_names,omitempty"`
	CaseFormat       string   `yaml:"case_format,omitempty"`
	InspectAncestors *bool    `yaml:"inspect_ancestors,omitempty"`
	Culture          string   `yaml:"culture"`
	EnumHandling     string   `yaml:"enum_handling"`
	DateHandling     string   `yaml:"date_handling"`
	GUIDHandling     string   `yaml:"guid_handling"`
	UnknownKeys      string   `yaml:"unknown_keys"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Resolver:     ResolverDefault,
		Culture:      language.Und.String(),
		EnumHandling: "name",
		DateHandling: "full",
		GUIDHandling: types.GUIDDashed.String(),
		UnknownKeys:  "ignore",
	}
}

// LoadConfig loads configuration from a YAML file, environment overrides are applied on top
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.ApplyEnv()
	return config, nil
}

// ApplyEnv overrides configuration with DICTOLOGY_* environment variables
func (c *Config) ApplyEnv() {
	overrides := map[string]*string{
		"RESOLVER":      &c.Resolver,
		"CASE_FORMAT":   &c.CaseFormat,
		"CULTURE":       &c.Culture,
		"ENUM_HANDLING": &c.EnumHandling,
		"DATE_HANDLING": &c.DateHandling,
		"GUID_HANDLING": &c.GUIDHandling,
		"UNKNOWN_KEYS":  &c.UnknownKeys,
	}
	for name, target := range overrides {
		if value, ok := os.LookupEnv(EnvPrefix + name); ok {
			*target = strings.TrimSpace(value)
		}
	}
	if value, ok := os.LookupEnv(EnvPrefix + "TAG_NAMES"); ok {
		c.TagNames = nil
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				c.TagNames = append(c.TagNames, name)
			}
		}
	}
}

// Validate checks configuration, all problems are reported at once
func (c *Config) Validate() error {
	errs := errsx.Map{}
	switch strings.ToLower(c.Resolver) {
	case "", ResolverDefault, ResolverContract, ResolverWeb, ResolverFormat:
	default:
		errs.Set("resolver", fmt.Errorf("unsupported resolver %q", c.Resolver))
	}
	if c.CaseFormat != "" && !text.NewCaseFormat(c.CaseFormat).IsDefined() {
		errs.Set("case_format", fmt.Errorf("unsupported case format %q", c.CaseFormat))
	}
	if _, err := language.Parse(c.culture()); err != nil {
		errs.Set("culture", fmt.Errorf("invalid culture %q: %w", c.Culture, err))
	}
	if _, err := c.enumHandling(); err != nil {
		errs.Set("enum_handling", err)
	}
	if _, err := c.dateHandling(); err != nil {
		errs.Set("date_handling", err)
	}
	if _, err := c.guidHandling(); err != nil {
		errs.Set("guid_handling", err)
	}
	if _, err := c.unknownKeys(); err != nil {
		errs.Set("unknown_keys", err)
	}
	return errs.AsError()
}

// Settings validates configuration and creates settings, options are applied after configuration
func (c *Config) Settings(logger *slog.Logger, opts ...Option) (*Settings, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	culture, _ := language.Parse(c.culture())
	enumHandling, _ := c.enumHandling()
	dateHandling, _ := c.dateHandling()
	guidHandling, _ := c.guidHandling()
	unknownKeys, _ := c.unknownKeys()
	options := []Option{
		WithResolver(c.resolver()),
		WithCulture(culture),
		WithEnumHandling(enumHandling),
		WithDateHandling(dateHandling),
		WithGUIDHandling(guidHandling),
		WithUnknownKeyPolicy(unknownKeys),
		WithLogger(logger),
	}
	return NewSettings(append(options, opts...)...), nil
}

func (c *Config) resolver() resolver.Resolver {
	var opts []resolver.Option
	if len(c.TagNames) > 0 {
		opts = append(opts, resolver.WithTagNames(c.TagNames...))
	}
	if c.CaseFormat != "" {
		opts = append(opts, resolver.WithCaseFormat(text.NewCaseFormat(c.CaseFormat)))
	}
	if c.InspectAncestors != nil {
		opts = append(opts, resolver.WithInspectAncestors(*c.InspectAncestors))
	}
	switch strings.ToLower(c.Resolver) {
	case ResolverContract:
		return resolver.NewContract(opts...)
	case ResolverWeb:
		return resolver.NewWeb(opts...)
	case ResolverFormat:
		return resolver.NewFormat(opts...)
	}
	if len(opts) == 0 {
		return nil
	}
	return resolver.NewDefault(opts...)
}

func (c *Config) culture() string {
	if c.Culture == "" {
		return language.Und.String()
	}
	return c.Culture
}

func (c *Config) enumHandling() (EnumHandling, error) {
	switch strings.ToLower(c.EnumHandling) {
	case "", "name":
		return EnumAsName, nil
	case "value":
		return EnumAsValue, nil
	}
	return EnumAsName, fmt.Errorf("unsupported enum handling %q, expected name or value", c.EnumHandling)
}

func (c *Config) dateHandling() (DateHandling, error) {
	switch strings.ToLower(c.DateHandling) {
	case "", "full":
		return DateFull, nil
	case "minimal":
		return DateMinimal, nil
	}
	return DateFull, fmt.Errorf("unsupported date handling %q, expected full or minimal", c.DateHandling)
}

func (c *Config) guidHandling() (types.GUIDFormat, error) {
	if c.GUIDHandling == "" {
		return types.GUIDDashed, nil
	}
	return types.ParseGUIDFormat(c.GUIDHandling)
}

func (c *Config) unknownKeys() (UnknownKeyPolicy, error) {
	switch strings.ToLower(c.UnknownKeys) {
	case "", "ignore":
		return IgnoreUnknownKeys, nil
	case "error":
		return ErrorOnUnknownKeys, nil
	}
	return IgnoreUnknownKeys, fmt.Errorf("unsupported unknown keys policy %q, expected ignore or error", c.UnknownKeys)
}
