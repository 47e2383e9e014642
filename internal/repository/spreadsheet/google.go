package spreadsheet

import (
	"context"
	"fmt"
	"strings"

	"github.com/kurochkinivan/result_analysis/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const valueInputRaw = "RAW"

// GoogleSheetsRepository stores grades in one worksheet of a Google spreadsheet.
type GoogleSheetsRepository struct {
	reader
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewSheetsService accepts a credentials file path or inline service account JSON.
func NewSheetsService(ctx context.Context, credentials string, opts ...option.ClientOption) (*sheets.Service, error) {
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	switch creds := strings.TrimSpace(credentials); {
	case creds == "":
	case strings.HasPrefix(creds, "{"):
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	default:
		opts = append(opts, option.WithCredentialsFile(creds))
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return service, nil
}

func NewGoogleSheetsRepository(service *sheets.Service, spreadsheetID, worksheet string) *GoogleSheetsRepository {
	r := &GoogleSheetsRepository{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}
	r.reader = reader{load: r.load}

	return r
}

func (r *GoogleSheetsRepository) AppendGrades(ctx context.Context, grades []*domain.GradeRecord) error {
	s, err := r.load(ctx)
	if err != nil {
		return err
	}

	values, firstRow := s.appendRows(grades)

	_, err = r.service.Spreadsheets.Values.
		Update(r.spreadsheetID, r.cellRange(firstRow), &sheets.ValueRange{Values: values}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to write rows at %s: %w", r.cellRange(firstRow), err)
	}

	return nil
}

func (r *GoogleSheetsRepository) load(ctx context.Context) (*sheet, error) {
	resp, err := r.service.Spreadsheets.Values.
		Get(r.spreadsheetID, r.sheetName()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read worksheet %q: %w", r.worksheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = fmt.Sprint(cell)
		}
	}

	return parseSheet(rows)
}

func (r *GoogleSheetsRepository) sheetName() string {
	return "'" + strings.ReplaceAll(r.worksheet, "'", "''") + "'"
}

func (r *GoogleSheetsRepository) cellRange(row int) string {
	return fmt.Sprintf("%s!A%d", r.sheetName(), row)
}
