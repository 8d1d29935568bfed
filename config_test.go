package dictology

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/hengadev/errsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/dictology/types"
	"golang.org/x/text/language"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "dictology.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
resolver: web
case_format: lowerCamel
inspect_ancestors: false
culture: de
enum_handling: value
date_handling: minimal
guid_handling: B
unknown_keys: error
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ResolverWeb, config.Resolver)
	require.NotNil(t, config.InspectAncestors)
	assert.False(t, *config.InspectAncestors)
	require.NoError(t, config.Validate())

	settings, err := config.Settings(slog.Default())
	require.NoError(t, err)
	assert.Equal(t, language.German, settings.Culture())
	assert.Equal(t, EnumAsValue, settings.EnumHandling())
	assert.Equal(t, DateMinimal, settings.DateHandling())
	assert.Equal(t, types.GUIDBracesUpper, settings.GUIDHandling())
	assert.Equal(t, ErrorOnUnknownKeys, settings.UnknownKeys())
	assert.Same(t, slog.Default(), settings.Logger())

	type account struct {
		ID      int `json:"id"`
		Balance float64
	}
	dictionary, err := ToDictionary(account{ID: 1, Balance: 2}, settings)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": 1, "balance": 2.0}, dictionary)
}

func TestLoadConfig_Env(t *testing.T) {
	path := writeConfig(t, "resolver: contract\nculture: de\n")
	t.Setenv(EnvPrefix+"CULTURE", "fr")
	t.Setenv(EnvPrefix+"RESOLVER", "default")
	t.Setenv(EnvPrefix+"TAG_NAMES", "json, dict")
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", config.Culture)
	assert.Equal(t, ResolverDefault, config.Resolver)
	assert.Equal(t, []string{"json", "dict"}, config.TagNames)
	assert.Equal(t, "name", config.EnumHandling)

	settings, err := config.Settings(nil, WithEnumHandling(EnumAsValue))
	require.NoError(t, err)
	assert.Equal(t, language.French, settings.Culture())
	assert.Equal(t, EnumAsValue, settings.EnumHandling())
	assert.NotSame(t, defaultResolver, settings.Resolver())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = LoadConfig(writeConfig(t, "resolver: [web"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		config      *Config
		errKeys     []string
	}{
		{description: "default", config: DefaultConfig()},
		{description: "empty", config: &Config{}},
		{
			description: "all invalid",
			config: &Config{
				Resolver:     "xml",
				CaseFormat:   "weird",
				Culture:      "!!",
				EnumHandling: "ordinal",
				DateHandling: "short",
				GUIDHandling: "z",
				UnknownKeys:  "warn",
			},
			errKeys: []string{"resolver", "case_format", "culture", "enum_handling", "date_handling", "guid_handling", "unknown_keys"},
		},
		{
			description: "guid layout",
			config:      &Config{GUIDHandling: "q"},
			errKeys:     []string{"guid_handling"},
		},
	}
	for _, testCase := range testCases {
		err := testCase.config.Validate()
		if len(testCase.errKeys) == 0 {
			assert.NoError(t, err, testCase.description)
			continue
		}
		errs, ok := err.(errsx.Map)
		require.True(t, ok, testCase.description)
		assert.Equal(t, len(testCase.errKeys), len(errs), testCase.description)
		for _, key := range testCase.errKeys {
			_, ok := errs[key]
			assert.True(t, ok, testCase.description+": "+key)
		}
		_, err = testCase.config.Settings(nil)
		assert.Error(t, err, testCase.description)
	}

	settings, err := (&Config{}).Settings(nil)
	require.NoError(t, err)
	assert.Same(t, defaultResolver, settings.Resolver())
}
