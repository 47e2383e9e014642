package v1

import (
	"log/slog"
	"time"
)

type Options struct {
	CookieName       string
	TokenTTL         time.Duration
	MaxUploadSize    int64
	DashboardBaseURL string
}

type Handler struct {
	log           *slog.Logger
	authenticator Authenticator
	ingester      Ingester
	grades        GradesProvider
	uploads       UploadsProvider
	reports       ReportGenerator
	opts          Options
}

func NewHandler(
	log *slog.Logger,
	authenticator Authenticator,
	ingester Ingester,
	grades GradesProvider,
	uploads UploadsProvider,
	reports ReportGenerator,
	opts Options,
) *Handler {
	return &Handler{
		log:           log,
		authenticator: authenticator,
		ingester:      ingester,
		grades:        grades,
		uploads:       uploads,
		reports:       reports,
		opts:          opts,
	}
}
