package main

import (
	"log"
	"os"

	"github.com/lomik/zapwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/microflex/microflex/cmd/microflex/config"
)

// BuildVersion is provided to be overridden at build time. Eg. go build -ldflags -X 'main.BuildVersion=...'
var BuildVersion = "(development build)"

func newRootCmd() *cobra.Command {
	var configPath, envPrefix string

	root := &cobra.Command{
		Use:           "microflex",
		Short:         "Statistics and arithmetic over microplate data",
		Version:       BuildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := zapwriter.Logger("main")
			if envPrefix == "" {
				logger.Warn("empty prefix is not recommended due to possible collisions with OS environment variables")
			}
			if err := config.SetUpViper(logger, configPath, envPrefix); err != nil {
				return err
			}
			return config.SetUpConfig(logger)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "path to the config file")
	flags.StringVar(&envPrefix, "envprefix", "MICROFLEX", "prefix for environment variables override")
	flags.String("domain", config.Config.Domain, "numeric domain: double, decimal, integer or biginteger")
	flags.String("format", config.Config.Format, "output format: json or csv")
	flags.String("log-level", "", "override the level of every logger")
	_ = viper.BindPFlag("domain", flags.Lookup("domain"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("loglevel", flags.Lookup("log-level"))

	root.AddCommand(newStatCmd(), newOpCmd(), newDescribeCmd(), newConfigCmd())
	return root
}

func main() {
	err := zapwriter.ApplyConfig([]zapwriter.Config{config.DefaultLoggerConfig})
	if err != nil {
		log.Fatal("Failed to initialize logger with default configuration")
	}

	if err := newRootCmd().Execute(); err != nil {
		zapwriter.Logger("main").Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
