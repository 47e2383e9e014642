package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/kurochkinivan/result_analysis/internal/config"
	"github.com/kurochkinivan/result_analysis/internal/domain"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

const defaultMaxUploadSize = 32 << 20

func flags() []cli.Flag {
	var configFile string

	source := func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(&configFile)))
	}

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: &configFile,
		},
		&cli.StringFlag{
			Name:      "store",
			Usage:     "Set grades destination: postgres, sheets or xlsx",
			Value:     config.StorePostgreSQL,
			Sources:   source("app.store"),
			Validator: oneOf(config.StorePostgreSQL, config.StoreSheets, config.StoreWorkbook),
		},
		&cli.StringFlag{
			Name:      "lock",
			Usage:     "Set ingestion lock: none, local or redis",
			Value:     config.LockLocal,
			Sources:   source("app.lock"),
			Validator: oneOf(config.LockNone, config.LockLocal, config.LockRedis),
		},
		&cli.StringSliceFlag{
			Name:    "required-columns",
			Usage:   "Set columns every uploaded CSV must contain",
			Value:   domain.DefaultRequiredColumns,
			Sources: source("app.required_columns"),
		},
		&cli.StringFlag{
			Name:      "inbox-dir",
			Aliases:   []string{"i"},
			Usage:     "Set directory to import CSV files from, empty disables the importer",
			Sources:   source("app.inbox_dir"),
			Validator: validateOptionalDirectory,
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set inbox directory scan interval",
			Sources: source("app.scan_interval"),
		},
		&cli.Int64Flag{
			Name:    "max-upload-size",
			Usage:   "Set maximum upload request size in bytes",
			Value:   defaultMaxUploadSize,
			Sources: source("app.max_upload_size"),
		},
		&cli.StringFlag{
			Name:    "dashboard-url",
			Usage:   "Set dashboard base URL linked from course visualizations",
			Sources: source("app.dashboard_url"),
		},
		&cli.StringFlag{
			Name:     "pg-host",
			Usage:    "Set PostgreSQL host",
			Value:    "localhost",
			Sources:  source("postgresql.host"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-port",
			Usage:    "Set PostgreSQL port",
			Value:    "5432",
			Sources:  source("postgresql.port"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-username",
			Usage:    "Set PostgreSQL username",
			Sources:  source("postgresql.username"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-password",
			Usage:    "Set PostgreSQL password",
			Sources:  source("postgresql.password"),
			Required: true,
		},
		&cli.StringFlag{
			Name:     "pg-dbname",
			Usage:    "Set PostgreSQL database name",
			Value:    "result_analysis",
			Sources:  source("postgresql.dbname"),
			Required: true,
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: source("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: source("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: source("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: source("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: source("http.write_timeout"),
		},
		&cli.StringFlag{
			Name:    "auth-secret",
			Usage:   "Set session token signing secret",
			Sources: cli.NewValueSourceChain(cli.EnvVar("RESULT_ANALYSIS_AUTH_SECRET"), yaml.YAML("auth.secret", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.DurationFlag{
			Name:    "auth-token-ttl",
			Usage:   "Set session lifetime",
			Value:   12 * time.Hour,
			Sources: source("auth.token_ttl"),
		},
		&cli.StringFlag{
			Name:    "auth-cookie",
			Usage:   "Set session cookie name",
			Value:   "session",
			Sources: source("auth.cookie"),
		},
		&cli.StringFlag{
			Name:    "sheets-credentials",
			Usage:   "Set service account credentials `FILE` or inline JSON",
			Sources: cli.NewValueSourceChain(cli.EnvVar("GOOGLE_SHEETS_CREDENTIALS"), yaml.YAML("sheets.credentials", altsrc.NewStringPtrSourcer(&configFile))),
		},
		&cli.StringFlag{
			Name:    "sheets-spreadsheet-id",
			Usage:   "Set Google spreadsheet id",
			Sources: source("sheets.spreadsheet_id"),
		},
		&cli.StringFlag{
			Name:    "sheets-worksheet",
			Usage:   "Set worksheet name",
			Value:   "Sheet1",
			Sources: source("sheets.worksheet"),
		},
		&cli.StringFlag{
			Name:    "xlsx-path",
			Usage:   "Set workbook `FILE`",
			Value:   "grades.xlsx",
			Sources: source("xlsx.path"),
		},
		&cli.StringFlag{
			Name:    "xlsx-sheet",
			Usage:   "Set workbook sheet name",
			Value:   "Grades",
			Sources: source("xlsx.sheet"),
		},
		&cli.StringFlag{
			Name:    "redis-addr",
			Usage:   "Set Redis address for the redis lock",
			Value:   "localhost:6379",
			Sources: source("redis.addr"),
		},
		&cli.DurationFlag{
			Name:    "redis-lock-ttl",
			Usage:   "Set Redis lock lease",
			Value:   time.Minute,
			Sources: source("redis.lock_ttl"),
		},
	}
}


func oneOf(allowed ...string) func(string) error {
	return func(value string) error {
		if slices.Contains(allowed, value) {
			return nil
		}

		return fmt.Errorf("%q must be one of %s", value, strings.Join(allowed, ", "))
	}
}

func validateOptionalDirectory(dir string) error {
	if dir == "" {
		return nil
	}

	return validateDirectory(dir)
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", path)
		}
		return fmt.Errorf("failed to stat %q: %w", path, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", path)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", path)
	}

	return nil
}
