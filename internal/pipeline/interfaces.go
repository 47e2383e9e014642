package pipeline

import (
	"context"
	"io"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

// GradesStore is the destination of ingested grade records.
type GradesStore interface {
	GradeKeys(ctx context.Context) (domain.KeySet, error)
	AppendGrades(ctx context.Context, grades []*domain.GradeRecord) error
}

type UploadRecorder interface {
	SaveUpload(ctx context.Context, upload *domain.Upload) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker serializes ingestions that target the same destination.
type Locker interface {
	Lock(ctx context.Context, resource string) (unlock func(), err error)
}

type FilesProvider interface {
	Files(ctx context.Context) ([]*domain.InboxFile, error)
}

type FileUpdater interface {
	UpdateOrCreateFile(ctx context.Context, file *domain.InboxFile) error
}

type Ingester interface {
	Ingest(ctx context.Context, id domain.Identity, source domain.UploadSource, filename string, r io.Reader) (*domain.IngestResult, error)
}
