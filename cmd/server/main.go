package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/janisto/greeter-api/internal/calc"
	"github.com/janisto/greeter-api/internal/platform/config"
	applog "github.com/janisto/greeter-api/internal/platform/logging"
	"github.com/janisto/greeter-api/internal/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		// Sync on stdout returns EINVAL on some platforms; nothing to do about it.
		_ = applog.Sync()
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp(os.Stdout).RunContext(ctx, os.Args); err != nil {
		stop()
		applog.LogFatal(ctx, "command failed", err)
	}
}

func newApp(out io.Writer) *cli.App {
	serve := serveCommand()
	return &cli.App{
		Name:      "greeter-api",
		Usage:     "Welcome, health and greeting HTTP API",
		Version:   Version,
		Writer:    out,
		Flags:     serve.Flags,
		Action:    serve.Action,
		Commands:  []*cli.Command{serve, calcCommand()},
		ErrWriter: out,
	}
}

func serveCommand() *cli.Command {
	var (
		envFile  string
		host     string
		port     int
		logLevel string
	)
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server (default)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "Optional dotenv file loaded before reading the environment",
				Value:       ".env",
				Destination: &envFile,
			},
			&cli.StringFlag{
				Name:        "host",
				Usage:       "Interface to bind (overrides HOST)",
				Destination: &host,
			},
			&cli.IntFlag{
				Name:        "port",
				Aliases:     []string{"p"},
				Usage:       "Port to listen on (overrides PORT)",
				Destination: &port,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "debug, info, warn or error (overrides LOG_LEVEL)",
				Destination: &logLevel,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if c.IsSet("host") {
				cfg.Host = host
			}
			if c.IsSet("port") {
				cfg.Port = port
			}
			if c.IsSet("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := applog.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			applog.LogInfo(c.Context, "configuration loaded",
				zap.String("addr", cfg.Addr()),
				zap.Stringer("logLevel", applog.Level()),
				zap.Duration("shutdownTimeout", cfg.ShutdownTimeout),
			)
			return server.Run(c.Context, server.New(cfg, Version), cfg.ShutdownTimeout)
		},
	}
}

func calcCommand() *cli.Command {
	return &cli.Command{
		Name:  "calc",
		Usage: "Integer arithmetic helpers",
		Subcommands: []*cli.Command{
			binaryOp("add", "Print A + B", calc.Add[int64]),
			binaryOp("subtract", "Print A - B", calc.Subtract[int64]),
		},
	}
}

// binaryOp skips flag parsing so negative operands like "-1" are not read as flags.
func binaryOp(name, usage string, op func(a, b int64) int64) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           usage,
		ArgsUsage:       "A B",
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}
			if len(args) != 2 {
				return fmt.Errorf("%s: expected 2 integer arguments, got %d", name, len(args))
			}
			a, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("%s: invalid integer %q: %w", name, args[0], err)
			}
			b, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("%s: invalid integer %q: %w", name, args[1], err)
			}
			_, err = fmt.Fprintln(c.App.Writer, op(a, b))
			return err
		},
	}
}
