package config

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyStoreURL          = "store.url"
	KeyStoreAPIKey       = "store.api_key"
	KeyMatchThreshold    = "match.threshold"
	KeyMatchMinDescLen   = "match.min_description_len"
	KeyMatchLookahead    = "match.price_lookahead"
	KeyMatchMinPrice     = "match.min_price"
	KeyMatchMaxPrice     = "match.max_price"
	KeyMatchDenylist     = "match.denylist"
	KeyImportFilePrefix  = "import.file_prefix"
	KeyImportSkipMarker  = "import.skip_marker"
	KeyLogLevel          = "log.level"
	KeyLogFile           = "log.file"
)

type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Match  MatchConfig  `mapstructure:"match"`
	Import ImportConfig `mapstructure:"import"`
	Log    LogConfig    `mapstructure:"log"`
}

type StoreConfig struct {
	URL    string `mapstructure:"url" validate:"omitempty,url"`
	APIKey string `mapstructure:"api_key"`
}

type MatchConfig struct {
	// Threshold is the strict lower bound a fuzzy score must exceed.
	Threshold float64 `mapstructure:"threshold" validate:"gt=0,lte=1"`
	// MinDescriptionLen is the length a text cell must exceed before the
	// positional fallback treats it as a description.
	MinDescriptionLen int `mapstructure:"min_description_len" validate:"gt=0"`
	// PriceLookahead bounds how many columns the fallback scans for a price.
	PriceLookahead int      `mapstructure:"price_lookahead" validate:"gt=0"`
	MinPrice       float64  `mapstructure:"min_price" validate:"gt=0"`
	MaxPrice       float64  `mapstructure:"max_price" validate:"gtfield=MinPrice"`
	Denylist       []string `mapstructure:"denylist"`
}

type ImportConfig struct {
	// FilePrefix is the vendor marker stripped from workbook filenames
	// before they become customer names.
	FilePrefix string `mapstructure:"file_prefix"`
	// SkipMarker excludes template workbooks from import.
	SkipMarker string `mapstructure:"skip_marker"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Default returns the built-in configuration without consulting Viper.
func Default() Config {
	return Config{
		Match: MatchConfig{
			Threshold:         0.95,
			MinDescriptionLen: 15,
			PriceLookahead:    20,
			MinPrice:          0.01,
			MaxPrice:          10000,
			Denylist:          []string{"LOTE ", "TOTAL", "SUBTOTAL", "VALOR"},
		},
		Import: ImportConfig{
			FilePrefix: "SOMAS",
			SkipMarker: "PADRÃO",
		},
		Log: LogConfig{
			Level: "info",
			File:  "logs/pricebook.log",
		},
	}
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# pricebook configuration
store:
  url: ""
  api_key: ""

match:
  threshold: 0.95
  min_description_len: 15
  price_lookahead: 20
  min_price: 0.01
  max_price: 10000
  denylist: ["LOTE ", "TOTAL", "SUBTOTAL", "VALOR"]

import:
  file_prefix: "SOMAS"
  skip_marker: "PADRÃO"

log:
  level: info
  file: logs/pricebook.log
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validateDenylist(cfg.Match.Denylist); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyStoreURL, "")
	v.SetDefault(KeyStoreAPIKey, "")
	v.SetDefault(KeyMatchThreshold, 0.95)
	v.SetDefault(KeyMatchMinDescLen, 15)
	v.SetDefault(KeyMatchLookahead, 20)
	v.SetDefault(KeyMatchMinPrice, 0.01)
	v.SetDefault(KeyMatchMaxPrice, 10000)
	v.SetDefault(KeyMatchDenylist, []string{"LOTE ", "TOTAL", "SUBTOTAL", "VALOR"})
	v.SetDefault(KeyImportFilePrefix, "SOMAS")
	v.SetDefault(KeyImportSkipMarker, "PADRÃO")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "logs/pricebook.log")
}

func validateDenylist(denylist []string) error {
	for i, marker := range denylist {
		if strings.TrimSpace(marker) == "" {
			return fmt.Errorf("validation failed: match.denylist[%d] is blank", i)
		}
	}
	return nil
}
