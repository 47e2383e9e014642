package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

// InboxIdentity is the caller recorded for files imported from the inbox directory.
var InboxIdentity = domain.Identity{
	Username: "inbox",
	IsAdmin:  true,
}

// Importer feeds claimed inbox files through the ingester and records the outcome.
type Importer struct {
	log         *slog.Logger
	files       <-chan string
	ingester    Ingester
	fileUpdater FileUpdater
}

func NewImporter(log *slog.Logger, files <-chan string, ingester Ingester, fileUpdater FileUpdater) *Importer {
	return &Importer{
		log:         log,
		files:       files,
		ingester:    ingester,
		fileUpdater: fileUpdater,
	}
}

func (i *Importer) Run(ctx context.Context) error {
	for {
		select {
		case path, ok := <-i.files:
			if !ok {
				return nil
			}

			log := i.log.With(slog.String("filename", path))
			log.DebugContext(ctx, "received inbox file")

			if err := i.importFile(ctx, path); err != nil {
				log.ErrorContext(ctx, "failed to import inbox file", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (i *Importer) importFile(ctx context.Context, path string) error {
	result, ingestErr := i.ingestFile(ctx, path)

	now := time.Now()
	file := &domain.InboxFile{
		Name:        filepath.Base(path),
		Status:      domain.StatusDone,
		ProcessedAt: &now,
	}

	switch {
	case ingestErr != nil:
		file.Status = domain.StatusError
		file.ErrorMessage = ingestErr.Error()
	default:
		file.RecordsAdded = result.RecordsAdded
	}

	if err := i.fileUpdater.UpdateOrCreateFile(ctx, file); err != nil {
		return errors.Join(ingestErr, fmt.Errorf("failed to update file status: %w", err))
	}

	return ingestErr
}

func (i *Importer) ingestFile(ctx context.Context, path string) (_ *domain.IngestResult, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	return i.ingester.Ingest(ctx, InboxIdentity, domain.SourceInbox, path, f)
}
