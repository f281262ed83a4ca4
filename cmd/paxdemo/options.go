package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/inkyblackness/pax-sdl-demos/internal/config"
	"github.com/inkyblackness/pax-sdl-demos/internal/demo"
)

// Exit statuses.
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

type cliArgs struct {
	mode       string
	configPath string
	fixed      bool
	opaque     bool
	logLevel   string
	set        map[string]bool
}

func parseArgs(args []string, stderr io.Writer) (*cliArgs, error) {
	var a cliArgs
	fs := flag.NewFlagSet("paxdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modes := make([]string, len(demo.Modes))
	for i, m := range demo.Modes {
		modes[i] = string(m)
	}
	fs.StringVar(&a.mode, "mode", string(demo.ModeGUI), "demo to run: "+strings.Join(modes, ", "))
	fs.StringVar(&a.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/paxdemo/config.yaml)")
	fs.BoolVar(&a.fixed, "fixed", false, "keep the window at its configured size")
	fs.BoolVar(&a.opaque, "opaque", false, "draw the arc shapes without translucency")
	fs.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	a.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { a.set[f.Name] = true })
	return &a, nil
}

// loadConfig reads the config file and lays the explicitly given flags over
// it.
func loadConfig(a *cliArgs) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFromPath(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if a.set["mode"] {
		cfg.Mode = a.mode
	}
	if a.set["fixed"] {
		cfg.Resizable = !a.fixed
	}
	if a.set["opaque"] {
		cfg.Opaque = a.opaque
	}
	if a.set["log-level"] {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	level, err := cfg.Level()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// setup parses args and loads the configuration. The returned status is
// meaningful when cfg is nil.
func setup(args []string, stderr io.Writer) (*config.Config, int) {
	a, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil, exitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return nil, exitUsage
	}
	cfg, err := loadConfig(a)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%v\n", err)
		return nil, exitFatal
	}
	return cfg, exitOK
}
