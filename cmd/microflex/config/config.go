package config

import (
	"github.com/lomik/zapwriter"
	"gopkg.in/yaml.v2"
)

var DefaultLoggerConfig = zapwriter.Config{
	Logger:           "",
	File:             "stderr",
	Level:            "info",
	Encoding:         "console",
	EncodingTime:     "iso8601",
	EncodingDuration: "seconds",
}

type DecimalConfig struct {
	Places   int32  `mapstructure:"places" yaml:"places"`
	Rounding string `mapstructure:"rounding" yaml:"rounding"`
}

type ConfigType struct {
	Domain  string             `mapstructure:"domain" yaml:"domain"`
	Decimal DecimalConfig      `mapstructure:"decimal" yaml:"decimal"`
	Format  string             `mapstructure:"format" yaml:"format"`
	Logger  []zapwriter.Config `mapstructure:"logger" yaml:"logger"`
}

// skipcq: CRT-P0003
func (c ConfigType) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "Failed to marshal config: " + err.Error()
	}
	return string(data)
}

var Config = ConfigType{
	Domain: "double",
	Decimal: DecimalConfig{
		Places:   16,
		Rounding: "half_even",
	},
	Format: "json",
	Logger: []zapwriter.Config{DefaultLoggerConfig},
}
