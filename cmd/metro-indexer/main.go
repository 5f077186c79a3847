package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/theoremus-urban-solutions/metro-indexer/config"
	"github.com/theoremus-urban-solutions/metro-indexer/converter"
	"github.com/theoremus-urban-solutions/metro-indexer/internal"
	"github.com/theoremus-urban-solutions/metro-indexer/lines"
	"github.com/theoremus-urban-solutions/metro-indexer/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("metro-indexer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	in := fs.String("in", "", "input dataset (default: stations.json next to the binary)")
	out := fs.String("out", "", "output file (default: stations_with_indexes.json next to the binary)")
	cfgPath := fs.String("config", "", "config file (default: metro-indexer.yml next to the binary, if present)")
	logLevel := fs.String("log-level", "", "debug|info|warn|error")
	list := fs.Bool("list", false, "print the line index table and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *list {
		for _, e := range lines.Entries() {
			fmt.Fprintf(stdout, "%-4s %s\n", e.Index, e.Name)
		}
		return 0
	}

	baseDir, err := utils.ExecutableDir()
	if err != nil {
		fmt.Fprintf(stderr, "resolve executable directory: %v\n", err)
		return 1
	}

	cfg, err := config.Load(baseDir, *cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		return 1
	}
	if *in != "" {
		cfg.Input = *in
	}
	if *out != "" {
		cfg.Output = *out
	}
	if *logLevel != "" {
		cfg.LogLevel = strings.ToLower(*logLevel)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	log := internal.InitLogging(stderr, cfg.LogLevel)
	log.Debug().Str("base_dir", baseDir).Interface("config", cfg).Msg("Configuration loaded")

	conv := converter.NewConverter(converter.Options{
		Indent:          cfg.Indent,
		ReportUnmatched: cfg.ReportUnmatched,
	}, log)

	if _, err := conv.Convert(ctx, cfg.Input, cfg.Output); err != nil {
		log.Error().Err(err).Msg("Conversion failed")
		return 1
	}

	fmt.Fprintf(stdout, "Data successfully processed and saved to %s\n", cfg.Output)
	return 0
}
