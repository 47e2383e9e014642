package spreadsheet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/kurochkinivan/result_analysis/internal/domain"
	"github.com/xuri/excelize/v2"
)

// WorkbookRepository stores grades in a sheet of a local xlsx file.
type WorkbookRepository struct {
	reader
	mu    sync.Mutex
	path  string
	sheet string
}

func NewWorkbookRepository(path, sheet string) *WorkbookRepository {
	r := &WorkbookRepository{
		path:  path,
		sheet: sheet,
	}
	r.reader = reader{load: r.load}

	return r
}

func (r *WorkbookRepository) AppendGrades(ctx context.Context, grades []*domain.GradeRecord) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open()
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if err := r.ensureSheet(f); err != nil {
		return err
	}

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", r.sheet, err)
	}

	s, err := parseSheet(rows)
	if err != nil {
		return err
	}

	values, firstRow := s.appendRows(grades)
	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, firstRow+i)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", firstRow+i, err)
		}

		if err := f.SetSheetRow(r.sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", firstRow+i, err)
		}
	}

	if err := f.SaveAs(r.path); err != nil {
		return fmt.Errorf("failed to save workbook %q: %w", r.path, err)
	}

	return nil
}

func (r *WorkbookRepository) load(ctx context.Context) (_ *sheet, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := r.open()
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	idx, err := f.GetSheetIndex(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to look up sheet %q: %w", r.sheet, err)
	}
	if idx == -1 {
		return parseSheet(nil)
	}

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", r.sheet, err)
	}

	return parseSheet(rows)
}

// open starts a new workbook when the file does not exist yet.
func (r *WorkbookRepository) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		f = excelize.NewFile()
		if err := f.SetSheetName(f.GetSheetName(0), r.sheet); err != nil {
			return nil, fmt.Errorf("failed to name sheet %q: %w", r.sheet, err)
		}
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", r.path, err)
	}

	return f, nil
}

func (r *WorkbookRepository) ensureSheet(f *excelize.File) error {
	idx, err := f.GetSheetIndex(r.sheet)
	if err != nil {
		return fmt.Errorf("failed to look up sheet %q: %w", r.sheet, err)
	}

	if idx == -1 {
		if _, err := f.NewSheet(r.sheet); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", r.sheet, err)
		}
	}

	return nil
}
