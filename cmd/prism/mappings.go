package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/cooldogedev/prism/mapping"
	"github.com/cooldogedev/prism/util"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type MappingsCMD struct {
	config  string
	verbose bool
}

func (*MappingsCMD) Name() string     { return "mappings" }
func (*MappingsCMD) Synopsis() string { return "load the block state mappings and print their coverage" }

func (c *MappingsCMD) Usage() string {
	return c.Name() + " -config <file>: " + c.Synopsis() + "\n"
}

func (c *MappingsCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "prism.yaml", "path of the configuration file")
	f.BoolVar(&c.verbose, "v", false, "list every unmapped upstream block state")
}

func (c *MappingsCMD) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := util.LoadOpts(c.config)
	if err != nil {
		logrus.Errorf("Failed to load config: %v", err)
		return subcommands.ExitUsageError
	}

	catalog, err := mapping.Load(opts.Mappings, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		logrus.Errorf("Failed to load mappings: %v", err)
		return subcommands.ExitFailure
	}

	stats := catalog.Stats()
	fmt.Printf("upstream states:   %d\n", stats.Upstream)
	fmt.Printf("downstream states: %d\n", stats.Downstream)
	fmt.Printf("mapped explicitly: %d\n", stats.Explicit)
	fmt.Printf("mapped by base id: %d\n", stats.Inherited)
	fmt.Printf("unmapped:          %d\n", len(stats.Unmapped))
	if c.verbose {
		for _, state := range stats.Unmapped {
			fmt.Println("  " + state)
		}
	}
	if registries := catalog.Registries(); registries != nil {
		fmt.Printf("registries:        %d (plains biome %d)\n", len(registries.Registries), registries.PlainsBiome())
	}
	return subcommands.ExitSuccess
}
