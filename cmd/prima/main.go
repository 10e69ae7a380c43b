package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/davidyusaku-13/prima-mobile/config"
	"github.com/davidyusaku-13/prima-mobile/internal/bootstrap"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
	// offline commands never build the API client or identity provider.
	offline bool
}

type commandContext struct {
	Ctx      context.Context
	Logger   *slog.Logger
	Config   config.AppConfig
	In       io.Reader
	Out      io.Writer
	Services bootstrap.ServiceContainer
}

func main() {
	if len(os.Args) < 2 {
		if err := printUsage(os.Stderr); err != nil {
			slog.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			slog.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(os.Stderr); err != nil {
			slog.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmdCtx := &commandContext{
		Ctx:    ctx,
		Logger: logger,
		Config: cfg,
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	runErr := run(cmdCtx, cmd, os.Args[2:])
	stop()
	if runErr != nil {
		logger.ErrorContext(ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func run(cmdCtx *commandContext, cmd command, args []string) error {
	if !cmd.offline {
		svcs, err := bootstrap.NewServices(cmdCtx.Ctx, bootstrap.ServiceDeps{
			Config: &cmdCtx.Config,
			Logger: cmdCtx.Logger,
		})
		if err != nil {
			return fmt.Errorf("build services: %w", err)
		}
		defer func() {
			if closeErr := svcs.Close(); closeErr != nil {
				cmdCtx.Logger.Warn("metrics close failed", "error", closeErr)
			}
		}()
		cmdCtx.Services = svcs
	}
	return cmd.run(cmdCtx, args)
}

func commands() map[string]command {
	return map[string]command{
		"open": {
			name:        "open",
			description: "Resolve a route through the auth and admin gates and print what would mount",
			run:         runOpen,
		},
		"admin-access": {
			name:        "admin-access",
			description: "Probe the backend for the admin role of the current identity",
			run:         runAdminAccess,
		},
		"admin-overview": {
			name:        "admin-overview",
			description: "Load the admin overview (probe, health and users in parallel)",
			run:         runAdminOverview,
		},
		"admin-health": {
			name:        "admin-health",
			description: "Show the backend health snapshot",
			run:         runAdminHealth,
		},
		"admin-users": {
			name:        "admin-users",
			description: "List users returned by the admin endpoint",
			run:         runAdminUsers,
		},
		"sign-in": {
			name:        "sign-in",
			description: "Sign in with email and password and print the refresh token to store",
			run:         runSignIn,
		},
		"tabs": {
			name:        "tabs",
			description: "Print the tab bar and screens for a regular or admin user",
			run:         runTabs,
			offline:     true,
		},
	}
}

func printUsage(w io.Writer) error {
	if err := writef(w, "Usage: prima <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(w, "Available commands:\n"); err != nil {
		return err
	}
	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writef(w, "  %-16s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
