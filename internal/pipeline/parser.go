package pipeline

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/result_analysis/internal/domain"
)

type Parser struct {
	log             *slog.Logger
	requiredColumns []string
}

func NewParser(log *slog.Logger, requiredColumns []string) *Parser {
	if len(requiredColumns) == 0 {
		requiredColumns = domain.DefaultRequiredColumns
	}

	return &Parser{
		log:             log,
		requiredColumns: normalizeHeader(requiredColumns),
	}
}

// Parse decodes a CSV grade sheet. The header is checked against the required
// columns before any data row is read.
func (p *Parser) Parse(r io.Reader) ([]*domain.GradeRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &domain.FormatError{Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, &domain.FormatError{Err: fmt.Errorf("failed to read header: %w", err)}
	}

	header = normalizeHeader(header)

	if missing := p.missingColumns(header); len(missing) > 0 {
		return nil, &domain.SchemaError{Missing: missing}
	}

	dec, err := csvutil.NewDecoder(reader, header...)
	if err != nil {
		return nil, &domain.FormatError{Err: fmt.Errorf("failed to create decoder: %w", err)}
	}

	p.log.Debug("parsing records", slog.Any("header", header))

	var records []*domain.GradeRecord
	for {
		var record domain.GradeRecord

		err := dec.Decode(&record)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &domain.FormatError{Err: fmt.Errorf("record #%d: %w", len(records)+1, err)}
		}

		records = append(records, &record)
	}

	p.log.Debug("successfully parsed records", slog.Int("records_count", len(records)))

	return records, nil
}

func (p *Parser) missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[col] = true
	}

	var missing []string
	for _, col := range p.requiredColumns {
		if !present[col] {
			missing = append(missing, col)
		}
	}

	return missing
}

func normalizeHeader(header []string) []string {
	normalized := make([]string, len(header))
	for i, col := range header {
		normalized[i] = domain.NormalizeColumn(col)
	}

	return normalized
}
