package main

import (
	"fmt"
	confModule "github.com/MaximMNsk/go-project-root/internal/config"
	"github.com/MaximMNsk/go-project-root/internal/util/logger"
	"github.com/MaximMNsk/go-project-root/pathhandler"
	"github.com/pkg/errors"
	"io"
	"os"
	"path/filepath"
)

const (
	exitFound    = 0
	exitNotFound = 1
	exitFailure  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var conf confModule.OuterConfig
	err := conf.InitConfig(false, args, stderr)
	if err != nil {
		log := logger.Console(stderr, logger.WARN)
		log.Error().Err(err).Msg("Can't handle config")
		return exitFailure
	}

	log := logger.Console(stderr, conf.Final.LogLevel)
	log.Debug().
		Str("marker", string(conf.Final.Marker)).
		Str("start", conf.Final.StartDir).
		Msg("Searching project root")

	finder := pathhandler.NewFinder(conf.Final.Marker, pathhandler.WithLogger(log))
	root, err := finder.Find(conf.Final.StartDir)
	if err != nil {
		var listing *pathhandler.ListingError
		var environment *pathhandler.EnvironmentError
		switch {
		case errors.Is(err, pathhandler.ErrNotFound):
			log.Warn().Err(err).Msg("No project root")
			return exitNotFound
		case errors.As(err, &listing):
			log.Error().Err(errors.Cause(listing.Err)).Str("dir", listing.Dir).Msg("Can't list directory")
		case errors.As(err, &environment):
			log.Error().Err(err).Msg("Can't resolve start directory")
		default:
			log.Error().Err(err).Msg("Search failed")
		}
		return exitFailure
	}

	out := root
	if conf.Final.Join != `` {
		out = filepath.Join(root, conf.Final.Join)
	}
	log.Info().Str("root", root).Msg("Project root found")
	fmt.Fprintln(stdout, out)
	return exitFound
}
