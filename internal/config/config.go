package config

import (
	"flag"
	"github.com/MaximMNsk/go-project-root/internal/util/logger"
	"github.com/MaximMNsk/go-project-root/pathhandler"
	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"io"
	"path/filepath"
)

type OuterConfig struct {
	Default struct {
		Marker   string
		StartDir string
		LogLevel string
	}
	Env struct {
		Marker   string `env:"PROJECT_ROOT_MARKER"`
		StartDir string `env:"PROJECT_ROOT_START"`
		LogLevel string `env:"PROJECT_ROOT_LOG_LEVEL"`
	}
	Flag struct {
		Marker   string
		StartDir string
		LogLevel string
		Join     string
	}
	Final struct {
		Marker   pathhandler.Marker
		StartDir string
		LogLevel string
		Join     string
	}
}

/**
 * Config handlers
 */

func (config *OuterConfig) parseFlags(args []string, output io.Writer) error {
	flags := flag.NewFlagSet(`projectroot`, flag.ContinueOnError)
	flags.SetOutput(output)
	flags.StringVar(&config.Flag.Marker, "m", "", "marker file name")
	flags.StringVar(&config.Flag.StartDir, "d", "", "directory to start the search from")
	flags.StringVar(&config.Flag.LogLevel, "l", "", "log level")
	flags.StringVar(&config.Flag.Join, "j", "", "relative path to join with the found root")
	return flags.Parse(args)
}

func (config *OuterConfig) setDefaults() {
	config.Default.Marker = string(pathhandler.DefaultMarker)
	config.Default.StartDir = ``
	config.Default.LogLevel = logger.WARN
}

func (config *OuterConfig) parseEnv() error {
	err := env.Parse(&config.Env)
	return errors.Wrap(err, "parse environment")
}

func (config *OuterConfig) handleFinal() error {
	if config.Final.Marker == `` {
		return pathhandler.ErrEmptyMarker
	}
	if filepath.Base(string(config.Final.Marker)) != string(config.Final.Marker) {
		return errors.Errorf("marker %q must be a plain file name", config.Final.Marker)
	}
	if filepath.IsAbs(config.Final.Join) {
		return errors.Errorf("join path %q must be relative", config.Final.Join)
	}
	return nil
}

func pick(envValue, flagValue, defaultValue string) string {
	if envValue != "" {
		return envValue
	} else if flagValue != "" {
		return flagValue
	}
	return defaultValue
}

// InitConfig fills Final from env, flags and defaults, in that order of
// precedence. testMode skips the environment.
func (config *OuterConfig) InitConfig(testMode bool, args []string, output io.Writer) error {
	config.setDefaults()
	if !testMode {
		err := config.parseEnv()
		if err != nil {
			return err
		}
	}
	err := config.parseFlags(args, output)
	if err != nil {
		return err
	}

	config.Final.Marker = pathhandler.Marker(pick(config.Env.Marker, config.Flag.Marker, config.Default.Marker))
	config.Final.StartDir = pick(config.Env.StartDir, config.Flag.StartDir, config.Default.StartDir)
	config.Final.LogLevel = pick(config.Env.LogLevel, config.Flag.LogLevel, config.Default.LogLevel)
	config.Final.Join = config.Flag.Join

	return config.handleFinal()
}
