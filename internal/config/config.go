package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	StorePostgreSQL = "postgres"
	StoreSheets     = "sheets"
	StoreWorkbook   = "xlsx"
)

const (
	LockNone  = "none"
	LockLocal = "local"
	LockRedis = "redis"
)

type Config struct {
	App
	PostgreSQL
	HTTP
	Auth
	Sheets
	Workbook
	Redis
}

type App struct {
	Store             string
	Lock              string
	RequiredColumns   []string
	InboxDirectory    string
	InboxScanInterval time.Duration
	MaxUploadSize     int64
	DashboardBaseURL  string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Auth struct {
	Secret     string
	TokenTTL   time.Duration
	CookieName string
}

type Sheets struct {
	CredentialsFile string
	SpreadsheetID   string
	Worksheet       string
}

type Workbook struct {
	Path  string
	Sheet string
}

type Redis struct {
	Addr    string
	LockTTL time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			Store:             cmd.String("store"),
			Lock:              cmd.String("lock"),
			RequiredColumns:   cmd.StringSlice("required-columns"),
			InboxDirectory:    cmd.String("inbox-dir"),
			InboxScanInterval: cmd.Duration("scan-interval"),
			MaxUploadSize:     cmd.Int64("max-upload-size"),
			DashboardBaseURL:  cmd.String("dashboard-url"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
		Auth: Auth{
			Secret:     cmd.String("auth-secret"),
			TokenTTL:   cmd.Duration("auth-token-ttl"),
			CookieName: cmd.String("auth-cookie"),
		},
		Sheets: Sheets{
			CredentialsFile: cmd.String("sheets-credentials"),
			SpreadsheetID:   cmd.String("sheets-spreadsheet-id"),
			Worksheet:       cmd.String("sheets-worksheet"),
		},
		Workbook: Workbook{
			Path:  cmd.String("xlsx-path"),
			Sheet: cmd.String("xlsx-sheet"),
		},
		Redis: Redis{
			Addr:    cmd.String("redis-addr"),
			LockTTL: cmd.Duration("redis-lock-ttl"),
		},
	}
}
