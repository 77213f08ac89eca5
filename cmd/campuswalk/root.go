package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campuswalk/campus"
	"github.com/katalvlaran/campuswalk/config"
	"github.com/katalvlaran/campuswalk/logging"
	"github.com/katalvlaran/campuswalk/metrics"
)

var errNoMap = errors.New("no campus map given: set --map or map_file in the config")

// app holds the state shared by every subcommand. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	configPath string
	mapPath    string
	logLevel   string

	cfg     config.Config
	log     *slog.Logger
	metrics *metrics.Registry
	svc     *campus.Service
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "campuswalk",
		Short:         "Quickest walking routes across campus",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.mapPath, "map", "", "campus map in DOT edge-list form (overrides map_file)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")

	root.AddCommand(
		newRouteCmd(a),
		newLocationsCmd(a),
		newReachableCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup resolves configuration (defaults, then file, then flags), builds the
// logger, metrics registry and service, and loads the map.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if a.mapPath != "" {
		cfg.MapFile = a.mapPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.MapFile == "" {
		return errNoMap
	}

	a.cfg = cfg
	a.log = logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		AddSource: cfg.Log.AddSource,
	})
	a.metrics = metrics.NewRegistry()
	a.svc = campus.New(
		campus.WithLogger(a.log),
		campus.WithMetrics(a.metrics),
		campus.WithCapacity(cfg.Graph.InitialCapacity),
	)

	return a.svc.LoadFile(cfg.MapFile)
}
