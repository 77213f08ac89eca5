package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campuswalk/server"
)

func newRouteCmd(a *app) *cobra.Command {
	var via string
	var times bool

	cmd := &cobra.Command{
		Use:   "route START END",
		Short: "Print the quickest walk between two locations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.svc.Route(args[0], via, args[1])
			if err != nil {
				return err
			}
			return renderRoute(cmd.OutOrStdout(), r, times)
		},
	}
	cmd.Flags().StringVar(&via, "via", "", "location the walk must pass through")
	cmd.Flags().BoolVar(&times, "times", false, "show the walking time of every leg")

	return cmd
}

func newLocationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List every location on the map",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range a.svc.Locations() {
				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newReachableCmd(a *app) *cobra.Command {
	var maxHops int

	cmd := &cobra.Command{
		Use:   "reachable FROM",
		Short: "List locations reachable on foot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reach, err := a.svc.Reachable(cmd.Context(), args[0], maxHops)
			if err != nil {
				return err
			}
			return renderReach(cmd.OutOrStdout(), args[0], reach)
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "stop after this many walkways (0 = no limit)")

	return cmd
}

func newServeCmd(a *app) *cobra.Command {
	var addr string
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.Server.Addr = addr
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.Server.Watch = watch
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the map when the file changes")

	return cmd
}

// serve runs the HTTP server and, if enabled, the map watcher until ctx is
// cancelled or either of them fails.
func (a *app) serve(ctx context.Context) error {
	srv := server.New(a.svc,
		server.WithLogger(a.log),
		server.WithMetrics(a.metrics),
		server.WithCORSOrigins(a.cfg.Server.CORSOrigins...),
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gCtx, a.cfg.Server.Addr)
	})
	if a.cfg.Server.Watch {
		g.Go(func() error {
			return a.svc.Watch(gCtx, a.cfg.MapFile, 0)
		})
	}

	return g.Wait()
}
