package v1

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

type VisualizationResponse struct {
	Course            domain.Course            `json:"course"`
	GradeDistribution map[string]int           `json:"grade_distribution"`
	Distribution      domain.GradeDistribution `json:"distribution"`
	Records           []*domain.GradeRecord    `json:"records"`
	Total             int                      `json:"total"`
	DashboardURL      string                   `json:"dashboard_url,omitempty"`
}

func (h *Handler) Batches(w http.ResponseWriter, r *http.Request) {
	batches, err := h.grades.Batches(r.Context())
	h.writeList(w, r, batches, err)
}

func (h *Handler) Semesters(w http.ResponseWriter, r *http.Request) {
	semesters, err := h.grades.Semesters(r.Context(), pathParam(r, "batch"))
	h.writeList(w, r, semesters, err)
}

func (h *Handler) Courses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.grades.Courses(r.Context(), pathParam(r, "batch"), pathParam(r, "semester"))
	h.writeList(w, r, courses, err)
}

func (h *Handler) Visualization(w http.ResponseWriter, r *http.Request) {
	course, grades, ok := h.courseGrades(w, r)
	if !ok {
		return
	}

	dist := domain.NewGradeDistribution(grades)

	writeJSON(w, http.StatusOK, VisualizationResponse{
		Course:            course,
		GradeDistribution: dist.Map(),
		Distribution:      dist,
		Records:           grades,
		Total:             len(grades),
		DashboardURL:      dashboardURL(h.opts.DashboardBaseURL, course),
	})
}

func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	course, grades, ok := h.courseGrades(w, r)
	if !ok {
		return
	}

	pdf, err := h.reports.GenerateReport(course, grades)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to generate report", slog.String("err", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func (h *Handler) courseGrades(w http.ResponseWriter, r *http.Request) (domain.Course, []*domain.GradeRecord, bool) {
	course := domain.Course{
		BatchYear:  pathParam(r, "batch"),
		Semester:   pathParam(r, "semester"),
		CourseName: pathParam(r, "course"),
	}

	grades, err := h.grades.CourseGrades(r.Context(), course)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to get course grades", slog.String("err", err.Error()))
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return course, nil, false
	}

	if len(grades) == 0 {
		writeMessage(w, http.StatusNotFound, "No records found for the selected course")
		return course, nil, false
	}

	return course, grades, true
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, values []string, err error) {
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list values", slog.String("err", err.Error()))
		writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}

	if values == nil {
		values = []string{}
	}

	writeJSON(w, http.StatusOK, values)
}

func dashboardURL(base string, course domain.Course) string {
	if base == "" {
		return ""
	}

	u, err := url.Parse(base)
	if err != nil {
		return ""
	}

	q := u.Query()
	q.Set("Batch_year_", course.BatchYear)
	q.Set("Semester_", course.Semester)
	q.Set("Course_", course.CourseName)
	u.RawQuery = q.Encode()

	return u.String()
}
