package spreadsheet

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kurochkinivan/result_analysis/internal/domain"
)

var keyColumns = []string{
	domain.ColumnUSN,
	domain.ColumnCourseName,
	domain.ColumnBatchYear,
	domain.ColumnSemester,
}

// layout maps canonical column names to their position in a worksheet header.
type layout struct {
	width int
	index map[string]int
}

func newLayout(header []string) (*layout, error) {
	l := &layout{
		width: len(header),
		index: make(map[string]int, len(header)),
	}

	for i, cell := range header {
		col := domain.NormalizeColumn(cell)
		if _, ok := l.index[col]; !ok && col != "" {
			l.index[col] = i
		}
	}

	var missing []string
	for _, col := range keyColumns {
		if _, ok := l.index[col]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("worksheet header is missing columns: %s", strings.Join(missing, ", "))
	}

	return l, nil
}

func defaultLayout() *layout {
	l, _ := newLayout(domain.GradeColumns)
	return l
}

func (l *layout) record(row []string) *domain.GradeRecord {
	cell := func(col string) string {
		i, ok := l.index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	return &domain.GradeRecord{
		USN:         cell(domain.ColumnUSN),
		StudentName: cell(domain.ColumnStudentName),
		CourseName:  cell(domain.ColumnCourseName),
		BatchYear:   cell(domain.ColumnBatchYear),
		Semester:    cell(domain.ColumnSemester),
		Grade:       cell(domain.ColumnGrade),
	}
}

// row lays a record out in header order; unknown header columns stay empty.
func (l *layout) row(g *domain.GradeRecord) []any {
	row := make([]any, l.width)
	for i := range row {
		row[i] = ""
	}

	for col, i := range l.index {
		row[i] = g.Field(col)
	}

	return row
}

func (l *layout) header() []any {
	header := make([]any, l.width)
	for col, i := range l.index {
		header[i] = col
	}
	return header
}

// sheet is a snapshot of a worksheet. height counts every row including the header.
type sheet struct {
	layout *layout
	height int
	data   [][]string
}

func parseSheet(rows [][]string) (*sheet, error) {
	if len(rows) == 0 {
		return &sheet{}, nil
	}

	l, err := newLayout(rows[0])
	if err != nil {
		return nil, err
	}

	return &sheet{
		layout: l,
		height: len(rows),
		data:   rows[1:],
	}, nil
}

func (s *sheet) records() []*domain.GradeRecord {
	if s.layout == nil {
		return nil
	}

	records := make([]*domain.GradeRecord, 0, len(s.data))
	for _, row := range s.data {
		if blank(row) {
			continue
		}
		records = append(records, s.layout.record(row))
	}

	return records
}

// appendRows returns the rows to write below the current content, with a
// header first when the worksheet is empty.
func (s *sheet) appendRows(grades []*domain.GradeRecord) (values [][]any, firstRow int) {
	l := s.layout
	if l == nil {
		l = defaultLayout()
		values = append(values, l.header())
	}

	for _, g := range grades {
		values = append(values, l.row(g))
	}

	return values, s.height + 1
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// reader answers store queries from a full worksheet read.
type reader struct {
	load func(ctx context.Context) (*sheet, error)
}

func (r reader) GradeKeys(ctx context.Context) (domain.KeySet, error) {
	s, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	records := s.records()

	keys := make(domain.KeySet, len(records))
	for _, rec := range records {
		keys.Add(rec.Key())
	}

	return keys, nil
}

func (r reader) Batches(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, domain.ColumnBatchYear, func(*domain.GradeRecord) bool { return true })
}

func (r reader) Semesters(ctx context.Context, batch string) ([]string, error) {
	return r.distinct(ctx, domain.ColumnSemester, func(g *domain.GradeRecord) bool {
		return same(g.BatchYear, batch)
	})
}

func (r reader) Courses(ctx context.Context, batch, semester string) ([]string, error) {
	return r.distinct(ctx, domain.ColumnCourseName, func(g *domain.GradeRecord) bool {
		return same(g.BatchYear, batch) && same(g.Semester, semester)
	})
}

func (r reader) CourseGrades(ctx context.Context, course domain.Course) ([]*domain.GradeRecord, error) {
	s, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	var grades []*domain.GradeRecord
	for _, g := range s.records() {
		if same(g.BatchYear, course.BatchYear) && same(g.Semester, course.Semester) && same(g.CourseName, course.CourseName) {
			grades = append(grades, g)
		}
	}

	return grades, nil
}

func (r reader) distinct(ctx context.Context, column string, match func(*domain.GradeRecord) bool) ([]string, error) {
	s, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	values := []string{}
	for _, g := range s.records() {
		v := strings.TrimSpace(g.Field(column))
		if !match(g) || v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	sort.Strings(values)

	return values, nil
}

func same(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}
