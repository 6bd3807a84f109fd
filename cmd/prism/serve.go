package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/cooldogedev/prism"
	"github.com/cooldogedev/prism/api"
	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/server"
	"github.com/cooldogedev/prism/util"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type ServeCMD struct {
	config string
	debug  bool
}

func (*ServeCMD) Name() string     { return "serve" }
func (*ServeCMD) Synopsis() string { return "run the proxy" }

func (c *ServeCMD) Usage() string {
	return c.Name() + " -config <file>: " + c.Synopsis() + "\n"
}

func (c *ServeCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "prism.yaml", "path of the configuration file")
	f.BoolVar(&c.debug, "debug", false, "log packets that are dropped")
}

func (c *ServeCMD) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := util.LoadOpts(c.config)
	if err != nil {
		logrus.Errorf("Failed to load config: %v", err)
		return subcommands.ExitUsageError
	}

	level := slog.LevelInfo
	if c.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := mapping.Load(opts.Mappings, logger)
	if err != nil {
		logrus.Errorf("Failed to load mappings: %v", err)
		return subcommands.ExitFailure
	}
	if err := mapping.Init(catalog); err != nil {
		logrus.Errorf("Failed to install mappings: %v", err)
		return subcommands.ExitFailure
	}

	proxy := prism.NewPrism(server.NewStaticDiscovery(opts.Server, opts.FallbackServer), logger, opts, nil)
	if err := proxy.Listen(); err != nil {
		logrus.Errorf("Failed to listen on proxy: %v", err)
		return subcommands.ExitFailure
	}
	defer proxy.Close()

	if opts.APIAddr != "" {
		a := api.NewAPI(proxy.Registry(), logger, api.NewSecretBasedAuthentication(opts.APIToken))
		if err := a.Listen(opts.APIAddr); err != nil {
			logrus.Errorf("Failed to listen on api: %v", err)
			return subcommands.ExitFailure
		}
		defer a.Close()

		go func() {
			for {
				if err := a.Accept(); err != nil {
					logrus.Debugf("Stopped accepting api connections: %v", err)
					return
				}
			}
		}()
	}

	go func() {
		<-ctx.Done()
		_ = proxy.Close()
	}()

	logrus.Infof("Proxying %s to %s", opts.Addr, opts.Server)
	for {
		if _, err := proxy.Accept(); err != nil {
			return subcommands.ExitSuccess
		}
	}
}
