package v1

import (
	"context"
	"io"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, domain.Identity, error)
	Identify(token string) (domain.Identity, error)
}

type Ingester interface {
	Ingest(ctx context.Context, id domain.Identity, source domain.UploadSource, filename string, r io.Reader) (*domain.IngestResult, error)
}

type GradesProvider interface {
	Batches(ctx context.Context) ([]string, error)
	Semesters(ctx context.Context, batch string) ([]string, error)
	Courses(ctx context.Context, batch, semester string) ([]string, error)
	CourseGrades(ctx context.Context, course domain.Course) ([]*domain.GradeRecord, error)
}

type UploadsProvider interface {
	Uploads(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error)
}

type ReportGenerator interface {
	GenerateReport(course domain.Course, grades []*domain.GradeRecord) ([]byte, error)
}
