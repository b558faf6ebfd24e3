package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ipierette/catbytes-portfolio/infrastructure/logger/structured"
	catbytes "github.com/ipierette/catbytes-portfolio/lib"
	"github.com/ipierette/catbytes-portfolio/pkg/config"
)

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	configFile string
	logLevel   string
	timeout    time.Duration
	asJSON     bool

	// extra lets tests inject client options
	extra []catbytes.Option
}

func newRootCmd(extra ...catbytes.Option) *cobra.Command {
	opts := &rootOptions{extra: extra}

	cmd := &cobra.Command{
		Use:           "catbytes",
		Short:         "CatBytes adoption search and AI helpers",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", os.Getenv("CONFIG_FILE"), "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall deadline for the command")
	cmd.PersistentFlags().BoolVar(&opts.asJSON, "json", false, "print JSON instead of text")

	cmd.AddCommand(
		newAdoptCmd(opts),
		newEmailCmd(opts),
		newAdCmd(opts),
		newIdentifyCmd(opts),
	)
	return cmd
}

// client loads configuration and builds a library client
func (o *rootOptions) client() (*catbytes.Client, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := structured.New(structured.Options{Level: o.logLevel, Format: "text", Output: os.Stderr})
	if err != nil {
		return nil, err
	}

	options := append([]catbytes.Option{
		catbytes.WithConfig(cfg),
		catbytes.WithLogger(logger),
	}, o.extra...)
	return catbytes.NewClient(options...)
}

func (o *rootOptions) context(parent context.Context) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, o.timeout)
}
