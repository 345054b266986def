package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override config keys,
// e.g. FORMAUDIT_ASSOCIATION=last-label.
const EnvPrefix = "FORMAUDIT"

// Config keys.
const (
	KeyAssociation = "association"
	KeyFormat      = "format"
	KeySanitize    = "sanitize"
	KeyLogLevel    = "log_level"
	KeyTemplates   = "templates_dir"
)

// Config holds the settings shared by the CLI commands.
type Config struct {
	Association string `mapstructure:"association" yaml:"association" validate:"oneof=strict last-label"`
	Format      string `mapstructure:"format" yaml:"format" validate:"oneof=text json yaml html"`
	Sanitize    bool   `mapstructure:"sanitize" yaml:"sanitize"`
	LogLevel    string `mapstructure:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	// TemplatesDir overrides the embedded HTML report templates. It must
	// contain templates/report.tpl.
	TemplatesDir string `mapstructure:"templates_dir" yaml:"templates_dir,omitempty" validate:"omitempty,dir"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Association: "strict",
		Format:      "text",
		Sanitize:    false,
		LogLevel:    "warn",
	}
}

// New returns a viper instance seeded with defaults and wired to FORMAUDIT_*
// environment variables.
func New() *viper.Viper {
	v := viper.New()
	defaults := Default()
	v.SetDefault(KeyAssociation, defaults.Association)
	v.SetDefault(KeyFormat, defaults.Format)
	v.SetDefault(KeySanitize, defaults.Sanitize)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyTemplates, defaults.TemplatesDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath returns $HOME/.formaudit/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: find home directory: %w", err)
	}
	return filepath.Join(home, ".formaudit", "config.yaml"), nil
}

// Read loads a config file into v. An explicit path must exist; without one
// the default location is searched and a missing file is not an error. The
// returned string is the file that was read, if any.
func Read(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("config: read %s: %w", path, err)
		}
		return v.ConfigFileUsed(), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	v.AddConfigPath(filepath.Join(home, ".formaudit"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return "", nil
		}
		return "", fmt.Errorf("config: read default config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.Association = strings.ToLower(strings.TrimSpace(cfg.Association))
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks every field against its allowed values.
func Validate(cfg Config) error {
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			if first.Param() == "" {
				return fmt.Errorf("config: invalid %s %q (%s)", first.Field(), first.Value(), first.Tag())
			}
			return fmt.Errorf("config: invalid %s %q (allowed: %s)", first.Field(), first.Value(), first.Param())
		}
		return fmt.Errorf("config: validation failed: %w", err)
	}
	return nil
}
