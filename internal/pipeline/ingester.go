package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const csvExtension = ".csv"

// IngestService merges uploaded grade sheets into a destination store.
type IngestService struct {
	log         *slog.Logger
	parser      *Parser
	store       GradesStore
	uploads     UploadRecorder
	transactor  Transactor
	locker      Locker
	destination string
}

func NewIngestService(
	log *slog.Logger,
	parser *Parser,
	store GradesStore,
	uploads UploadRecorder,
	transactor Transactor,
	locker Locker,
	destination string,
) *IngestService {
	return &IngestService{
		log:         log,
		parser:      parser,
		store:       store,
		uploads:     uploads,
		transactor:  transactor,
		locker:      locker,
		destination: destination,
	}
}

// Ingest expects the caller to have asserted upload privilege on id.
func (s *IngestService) Ingest(
	ctx context.Context,
	id domain.Identity,
	source domain.UploadSource,
	filename string,
	r io.Reader,
) (*domain.IngestResult, error) {
	if !id.IsAdmin {
		return nil, domain.ErrForbidden
	}

	if err := ValidateFilename(filename); err != nil {
		return nil, err
	}

	log := s.log.With(
		slog.String("filename", filename),
		slog.String("username", id.Username),
		slog.String("source", string(source)),
	)

	upload := &domain.Upload{
		Filename: filepath.Base(filename),
		Username: id.Username,
		Source:   source,
	}

	result, err := s.ingest(ctx, log, upload, r)
	if err != nil {
		log.ErrorContext(ctx, "failed to ingest file", slog.String("err", err.Error()))
		s.saveFailure(ctx, log, upload, err)
		return nil, err
	}

	log.InfoContext(ctx, "file ingested",
		slog.Int("parsed", result.Parsed),
		slog.Int("duplicates", result.Duplicates),
		slog.Int("records_added", result.RecordsAdded),
	)

	return result, nil
}

func (s *IngestService) ingest(
	ctx context.Context,
	log *slog.Logger,
	upload *domain.Upload,
	r io.Reader,
) (*domain.IngestResult, error) {
	records, err := s.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	upload.Parsed = len(records)

	unlock, err := s.locker.Lock(ctx, s.destination)
	if err != nil {
		return nil, &domain.StoreError{Op: "acquire ingestion lock", Err: err}
	}
	defer unlock()

	existing, err := s.store.GradeKeys(ctx)
	if err != nil {
		return nil, &domain.StoreError{Op: "read existing grades", Err: err}
	}

	fresh, duplicates := Deduplicate(existing, records)

	result := &domain.IngestResult{
		Filename:     upload.Filename,
		Parsed:       len(records),
		Duplicates:   duplicates,
		RecordsAdded: len(fresh),
	}

	now := time.Now()
	upload.Status = result.Status()
	upload.RecordsAdded = result.RecordsAdded
	upload.ProcessedAt = &now

	if len(fresh) == 0 {
		log.DebugContext(ctx, "no new records, skipping write", slog.Int("duplicates", duplicates))

		if err := s.uploads.SaveUpload(ctx, upload); err != nil {
			log.ErrorContext(ctx, "failed to record upload", slog.String("err", err.Error()))
		}

		return result, nil
	}

	log.DebugContext(ctx, "appending records", slog.Int("records_count", len(fresh)))

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		// the upload row goes first so a failed append rolls it back
		if err := s.uploads.SaveUpload(ctx, upload); err != nil {
			return fmt.Errorf("failed to record upload: %w", err)
		}

		if err := s.store.AppendGrades(ctx, fresh); err != nil {
			return &domain.StoreError{Op: "append grades", Err: err}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *IngestService) saveFailure(ctx context.Context, log *slog.Logger, upload *domain.Upload, cause error) {
	now := time.Now()
	upload.Status = domain.StatusError
	upload.RecordsAdded = 0
	upload.ErrorMessage = cause.Error()
	upload.ProcessedAt = &now

	if err := s.uploads.SaveUpload(context.WithoutCancel(ctx), upload); err != nil {
		log.ErrorContext(ctx, "failed to record failed upload", slog.String("err", err.Error()))
	}
}

// ValidateFilename rejects uploads that are not CSV files before any parsing.
func ValidateFilename(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return &domain.TransportError{Reason: "No file selected"}
	}

	if !strings.EqualFold(filepath.Ext(filename), csvExtension) {
		return &domain.TransportError{Reason: "Invalid file format. Please upload a CSV file"}
	}

	return nil
}
