package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kurochkinivan/result_analysis/internal/app"
	"github.com/kurochkinivan/result_analysis/internal/auth"
	"github.com/kurochkinivan/result_analysis/internal/config"
	"github.com/kurochkinivan/result_analysis/internal/repository/postgresql"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	return &cli.Command{
		Name:    "result_analysis",
		Usage:   "College result analysis service",
		Version: version,
		Flags:   flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := logger(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)
			if cfg.Auth.Secret == "" {
				return errors.New("auth-secret is required to serve requests")
			}

			return app.New(log, cfg).Run(ctx)
		},
		Commands: []*cli.Command{
			addUserCmd(),
		},
	}
}

func addUserCmd() *cli.Command {
	return &cli.Command{
		Name:  "add-user",
		Usage: "Create a user account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "username",
				Aliases:  []string{"u"},
				Usage:    "Set login name",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "password",
				Aliases:  []string{"p"},
				Usage:    "Set password",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "admin",
				Usage: "Grant upload privilege",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := logger(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)

			pool, err := postgresql.NewConnection(ctx, log, cfg.PostgreSQL)
			if err != nil {
				return fmt.Errorf("failed to create db connection: %w", err)
			}
			defer pool.Close()

			user, err := auth.CreateUser(
				ctx,
				postgresql.NewUsersRepository(pool),
				cmd.String("username"),
				cmd.String("password"),
				cmd.Bool("admin"),
			)
			if err != nil {
				return err
			}

			log.InfoContext(ctx, "user created",
				slog.Int64("id", user.ID),
				slog.String("username", user.Username),
				slog.Bool("is_admin", user.IsAdmin),
			)

			return nil
		},
	}
}

func logger(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return log, nil
}
