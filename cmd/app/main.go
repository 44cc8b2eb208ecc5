package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/dagaz/internal"
	"github.com/starford/dagaz/internal/agenda"
	"github.com/starford/dagaz/internal/mcpserver"
	"github.com/starford/dagaz/internal/planner"
	pkgconfig "github.com/starford/dagaz/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err == nil {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// MCP talks JSON-RPC over stdout; keep logs on stderr.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	bs := internal.OpenStore(cfg, logger)
	defer bs.Close()

	srv := mcpserver.New(
		planner.NewStore(bs),
		planner.NewProjector(cfg.Planner.SummaryLimit),
		planner.NewExporter(cfg.Planner.InviteDuration()),
	)
	return srv.ServeStdio()
}

func runAgenda(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	bs := internal.OpenStore(cfg, logger)
	defer bs.Close()

	store := planner.NewStore(bs)
	list, err := store.Load()
	if err != nil {
		return err
	}

	cursor := time.Now()
	if raw := cmd.String("cursor"); raw != "" {
		cursor, err = time.ParseInLocation(planner.DateLayout, raw, time.Local)
		if err != nil {
			return fmt.Errorf("invalid cursor %q, want YYYY-MM-DD", raw)
		}
	}

	p := planner.NewProjector(cfg.Planner.SummaryLimit)
	switch view := cmd.String("view"); view {
	case "day":
		fmt.Print(agenda.RenderDay(p.Day(list, cursor)))
	case "week":
		fmt.Print(agenda.RenderWeek(p.Week(list, cursor, time.Now())))
	default:
		return fmt.Errorf("unknown view %q, want day or week", view)
	}
	return nil
}

func main() {
	configFlag := func() *cli.StringFlag {
		return &cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to config file",
			DefaultText: "config/config.yaml",
			Value:       "config/config.yaml",
			Sources:     cli.EnvVars("APP_CONFIG_FILE"),
		}
	}

	cmd := &cli.Command{
		Name:   "dagaz",
		Usage:  "Local-first personal day planner with calendar views, invite export, and live updates",
		Action: runServe,
		Flags:  []cli.Flag{configFlag()},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP server (default)",
				Action: runServe,
				Flags:  []cli.Flag{configFlag()},
			},
			{
				Name:   "mcp",
				Usage:  "Run the MCP server on stdio",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag()},
			},
			{
				Name:   "agenda",
				Usage:  "Print a calendar view to stdout",
				Action: runAgenda,
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "view",
						Usage: "View to print: day or week",
						Value: "day",
					},
					&cli.StringFlag{
						Name:  "cursor",
						Usage: "Anchor date (YYYY-MM-DD), defaults to today",
					},
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
