package config

import (
	"bytes"
	"os"
	"slices"
	"strings"

	"github.com/ansel1/merry"
	"github.com/lomik/zapwriter"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/microflex/microflex/pkg/numeric"
)

var (
	ErrConfig        = merry.New("invalid configuration")
	ErrUnknownFormat = merry.New("unknown output format")
)

// Domains are the accepted values of the domain setting.
var Domains = []string{"double", "decimal", "integer", "biginteger"}

// Formats are the accepted values of the format setting.
var Formats = []string{"json", "csv"}

// SetUpViper reads the config file, if any, and registers defaults and the
// environment prefix. Files ending in .toml are parsed as TOML, everything
// else as YAML.
func SetUpViper(logger *zap.Logger, configPath, envPrefix string) error {
	if configPath != "" {
		b, err := os.ReadFile(configPath)
		if err != nil {
			return ErrConfig.Here().WithCause(err).WithValue("config_path", configPath)
		}

		if strings.HasSuffix(configPath, ".toml") {
			logger.Debug("will parse config as toml",
				zap.String("config_file", configPath),
			)
			viper.SetConfigType("TOML")
		} else {
			logger.Debug("will parse config as yaml",
				zap.String("config_file", configPath),
			)
			viper.SetConfigType("YAML")
		}
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			return ErrConfig.Here().WithCause(err).WithValue("config_path", configPath)
		}
	}

	if envPrefix != "" {
		viper.SetEnvPrefix(envPrefix)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetDefault("domain", Config.Domain)
	viper.SetDefault("decimal.places", Config.Decimal.Places)
	viper.SetDefault("decimal.rounding", Config.Decimal.Rounding)
	viper.SetDefault("format", Config.Format)
	viper.AutomaticEnv()
	return nil
}

// SetUpConfig fills Config from viper, validates it and applies the logger
// configuration. Config is left untouched when anything fails.
func SetUpConfig(logger *zap.Logger) error {
	cfg := Config
	cfg.Logger = slices.Clone(Config.Logger)
	if err := viper.Unmarshal(&cfg); err != nil {
		return ErrConfig.Here().WithCause(err)
	}
	if len(cfg.Logger) == 0 {
		cfg.Logger = []zapwriter.Config{DefaultLoggerConfig}
	}
	if n := viper.GetString("loglevel"); n != "" {
		for i := range cfg.Logger {
			cfg.Logger[i].Level = n
		}
	}

	cfg.Domain = strings.ToLower(cfg.Domain)
	if !slices.Contains(Domains, cfg.Domain) {
		return numeric.ErrUnknownDomain.Here().Appendf("%q, expected one of %s", cfg.Domain, strings.Join(Domains, ", "))
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if !slices.Contains(Formats, cfg.Format) {
		return ErrUnknownFormat.Here().Appendf("%q, expected one of %s", cfg.Format, strings.Join(Formats, ", "))
	}
	if _, err := cfg.DecimalDomain(); err != nil {
		return err
	}

	if err := zapwriter.ApplyConfig(cfg.Logger); err != nil {
		return ErrConfig.Here().WithCause(err).Append("failed to initialize logger with requested configuration")
	}

	needStackTrace := false
	for _, l := range cfg.Logger {
		if strings.ToLower(l.Level) == "debug" {
			needStackTrace = true
			break
		}
	}
	merry.SetStackCaptureEnabled(needStackTrace)
	Config = cfg

	logger.Debug("config applied",
		zap.String("domain", cfg.Domain),
		zap.String("format", cfg.Format),
		zap.Bool("stack_trace", needStackTrace),
	)
	return nil
}

// DecimalDomain returns the decimal arithmetic described by the decimal
// section.
func (c ConfigType) DecimalDomain() (numeric.Decimal, error) {
	if c.Decimal.Places < 0 {
		return numeric.Decimal{}, ErrConfig.Here().Appendf("decimal.places must not be negative, got %d", c.Decimal.Places)
	}
	r, err := numeric.ParseRounding(c.Decimal.Rounding)
	if err != nil {
		return numeric.Decimal{}, err
	}
	return numeric.Decimal{Places: c.Decimal.Places, Rounding: r}, nil
}
