package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/shivangdevina/TRIA-Contact-hub/cli/api"
	"github.com/shivangdevina/TRIA-Contact-hub/cli/logger"
)

// Set at build time with -ldflags.
var (
	version  = "dev"
	revision = ""
	created  = ""
)

// Options for the CLI. Flags also bind to SERVICE_* env vars.
type Options struct {
	Host              string        `short:"H" doc:"host to listen on"                    default:""`
	Port              string        `short:"p" doc:"port to listen on"                    default:"8888"`
	ReadHeaderTimeout time.Duration `          doc:"time allowed to read request headers" default:"15s"`

	EndpointsPrefix string        `doc:"mount endpoints at a prefix"            default:"/api"`
	StoreLatency    time.Duration `doc:"simulated latency of the contact store" default:"300ms"`
	Seed            bool          `doc:"seed the store with example contacts"   default:"true"`

	LogLevel  string `doc:"log from debug, info, warn or error"`
	LogFile   string `doc:"append logs to file"`
	LogFormat string `doc:"format logs as text or json"         default:"text"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		log := logger.New(&logger.Options{
			Level:  options.LogLevel,
			File:   options.LogFile,
			Format: options.LogFormat,
		})
		slog.SetDefault(log)

		handler := api.NewRouter(
			&api.RouterOptions{EndpointsPrefix: options.EndpointsPrefix},
			&api.StoreOptions{Latency: options.StoreLatency, Seed: options.Seed},
			"TRIA Contact Hub", version, revision, created,
			log,
		)
		srv := api.NewServer(&api.ServerOptions{
			Host:              options.Host,
			Port:              options.Port,
			ReadHeaderTimeout: options.ReadHeaderTimeout,
		}, handler, log)

		hooks.OnStart(func() {
			log.Info("listening", "addr", srv.Addr)
			err := srv.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				log.Error("failed to listen and serve", "err", err)
			} else {
				log.Info("server closed")
			}
		})
		hooks.OnStop(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			err := srv.Shutdown(ctx)
			if err != nil {
				log.Warn("could not shutdown the server", "err", err)
			}
		})
	})
	cli.Run()
}
