package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

// Scanner polls the inbox directory and claims new CSV files for import.
type Scanner struct {
	log           *slog.Logger
	inboxDir      string
	scanInterval  time.Duration
	files         chan<- string
	filesProvider FilesProvider
	fileUpdater   FileUpdater
}

func NewScanner(
	log *slog.Logger,
	inboxDir string,
	scanInterval time.Duration,
	files chan<- string,
	filesProvider FilesProvider,
	fileUpdater FileUpdater,
) *Scanner {
	return &Scanner{
		log:           log,
		inboxDir:      inboxDir,
		scanInterval:  scanInterval,
		files:         files,
		filesProvider: filesProvider,
		fileUpdater:   fileUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "inbox scan started")

			if err := s.scanFiles(ctx); err != nil {
				s.log.ErrorContext(ctx, "failed to scan inbox", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	known, err := s.knownFiles(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.inboxDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.inboxDir, err)
	}

	for _, entry := range entries {
		if err := s.claim(ctx, entry, known); err != nil {
			s.log.ErrorContext(ctx, "failed to claim inbox file, skipping",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
		}
	}

	return nil
}

func (s *Scanner) knownFiles(ctx context.Context) (map[string]domain.Status, error) {
	files, err := s.filesProvider.Files(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get inbox files: %w", err)
	}

	known := make(map[string]domain.Status, len(files))
	for _, file := range files {
		known[file.Name] = file.Status
	}

	return known, nil
}

func (s *Scanner) claim(ctx context.Context, entry os.DirEntry, known map[string]domain.Status) error {
	if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), csvExtension) {
		return nil
	}

	status, ok := known[entry.Name()]
	if ok && status != domain.StatusPending {
		return nil
	}

	err := s.fileUpdater.UpdateOrCreateFile(ctx, &domain.InboxFile{
		Name:   entry.Name(),
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update file status: %w", err)
	}

	s.log.DebugContext(ctx, "claimed inbox file", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.inboxDir, entry.Name()):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
