package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/result_analysis/internal/auth"
	"github.com/kurochkinivan/result_analysis/internal/config"
	v1 "github.com/kurochkinivan/result_analysis/internal/controller/http/v1"
	"github.com/kurochkinivan/result_analysis/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/result_analysis/internal/lock"
	"github.com/kurochkinivan/result_analysis/internal/pipeline"
	"github.com/kurochkinivan/result_analysis/internal/repository/postgresql"
	"github.com/kurochkinivan/result_analysis/internal/repository/spreadsheet"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer     = 100
	shutdownTimeout = 5 * time.Second
)

// gradesStore is a destination that also answers course queries.
type gradesStore interface {
	pipeline.GradesStore
	v1.GradesProvider
}

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("store", a.cfg.App.Store),
		slog.String("lock", a.cfg.App.Lock),
		slog.String("inbox_dir", a.cfg.App.InboxDirectory),
	)

	pool, err := a.connect(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	store, err := a.gradesStore(ctx, pool)
	if err != nil {
		return err
	}

	locker, closeLocker, err := a.locker(ctx)
	if err != nil {
		return err
	}
	defer closeLocker()

	usersRepository := postgresql.NewUsersRepository(pool)
	uploadsRepository := postgresql.NewUploadsRepository(pool)
	inboxRepository := postgresql.NewInboxRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	parser := pipeline.NewParser(a.log, a.cfg.App.RequiredColumns)
	ingester := pipeline.NewIngestService(
		a.log,
		parser,
		store,
		uploadsRepository,
		txManager,
		locker,
		a.cfg.App.Store,
	)

	authService := auth.NewService(a.log, usersRepository, a.cfg.Auth.Secret, a.cfg.Auth.TokenTTL)

	handler := v1.NewHandler(
		a.log,
		authService,
		ingester,
		store,
		uploadsRepository,
		report_generator.New(),
		v1.Options{
			CookieName:       a.cfg.Auth.CookieName,
			TokenTTL:         a.cfg.Auth.TokenTTL,
			MaxUploadSize:    a.cfg.App.MaxUploadSize,
			DashboardBaseURL: a.cfg.App.DashboardBaseURL,
		},
	)
	server := v1.NewServer(a.cfg.HTTP, handler)

	erg, ctx := errgroup.WithContext(ctx)

	if a.cfg.App.InboxDirectory != "" {
		if err := inboxRepository.ResetProcessingFiles(ctx); err != nil {
			return fmt.Errorf("failed to reset processing files: %w", err)
		}

		a.startInbox(ctx, erg, ingester, inboxRepository)
	}

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}

func (a *App) connect(ctx context.Context) (*pgxpool.Pool, error) {
	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	return pool, nil
}

func (a *App) gradesStore(ctx context.Context, pool *pgxpool.Pool) (gradesStore, error) {
	switch a.cfg.App.Store {
	case config.StorePostgreSQL:
		return postgresql.NewGradesRepository(pool), nil

	case config.StoreSheets:
		a.log.InfoContext(ctx, "using google sheets store",
			slog.String("spreadsheet_id", a.cfg.Sheets.SpreadsheetID),
			slog.String("worksheet", a.cfg.Sheets.Worksheet),
		)

		service, err := spreadsheet.NewSheetsService(ctx, a.cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, err
		}

		return spreadsheet.NewGoogleSheetsRepository(service, a.cfg.Sheets.SpreadsheetID, a.cfg.Sheets.Worksheet), nil

	case config.StoreWorkbook:
		a.log.InfoContext(ctx, "using xlsx workbook store",
			slog.String("path", a.cfg.Workbook.Path),
			slog.String("sheet", a.cfg.Workbook.Sheet),
		)

		return spreadsheet.NewWorkbookRepository(a.cfg.Workbook.Path, a.cfg.Workbook.Sheet), nil

	default:
		return nil, fmt.Errorf("unknown store %q", a.cfg.App.Store)
	}
}

func (a *App) locker(ctx context.Context) (pipeline.Locker, func(), error) {
	switch a.cfg.App.Lock {
	case config.LockNone:
		return lock.Noop{}, func() {}, nil

	case config.LockLocal:
		return lock.NewLocal(), func() {}, nil

	case config.LockRedis:
		client, err := lock.NewRedisClient(ctx, a.cfg.Redis.Addr)
		if err != nil {
			return nil, nil, err
		}

		closeClient := func() {
			if err := client.Close(); err != nil {
				a.log.ErrorContext(ctx, "failed to close redis client", slog.String("err", err.Error()))
			}
		}

		return lock.NewRedis(a.log, client, a.cfg.Redis.LockTTL), closeClient, nil

	default:
		return nil, nil, fmt.Errorf("unknown lock %q", a.cfg.App.Lock)
	}
}

func (a *App) startInbox(
	ctx context.Context,
	erg *errgroup.Group,
	ingester pipeline.Ingester,
	inboxRepo *postgresql.InboxRepository,
) {
	files := make(chan string, filesBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.App.InboxDirectory,
		a.cfg.App.InboxScanInterval,
		files,
		inboxRepo,
		inboxRepo,
	)
	importer := pipeline.NewImporter(a.log, files, ingester, inboxRepo)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started", slog.Duration("scan_interval", a.cfg.App.InboxScanInterval))
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "importer started")
		return importer.Run(ctx)
	})
}
