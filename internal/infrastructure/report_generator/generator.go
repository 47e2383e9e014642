package report_generator

import (
	"fmt"
	"strconv"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const (
	titleHeight = 12
	lineHeight  = 7
)

var (
	titleProps  = props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}
	headerProps = props.Text{Size: 10, Style: fontstyle.Bold, Top: 1}
	cellProps   = props.Text{Size: 9, Top: 1}
)

// Generator renders a course result report as PDF.
type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

func (g *Generator) GenerateReport(course domain.Course, grades []*domain.GradeRecord) ([]byte, error) {
	m := maroto.New(config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build())

	m.AddRows(text.NewRow(titleHeight, fmt.Sprintf("%s: batch %s, semester %s",
		course.CourseName, course.BatchYear, course.Semester), titleProps))
	m.AddRows(text.NewRow(lineHeight, "Generated "+g.now().Format(time.DateTime), props.Text{Size: 8, Align: align.Center}))

	m.AddRows(distributionRows(domain.NewGradeDistribution(grades), len(grades))...)
	m.AddRows(gradeRows(grades)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	return doc.GetBytes(), nil
}

func distributionRows(dist domain.GradeDistribution, total int) []core.Row {
	rows := []core.Row{
		text.NewRow(titleHeight, "Grade distribution", props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}),
	}

	rows = append(rows, tableRow(headerProps, "Grade", "Students", "Share"))
	for _, c := range dist {
		share := float64(c.Count) / float64(total) * 100
		rows = append(rows, tableRow(cellProps, c.Grade, strconv.Itoa(c.Count), fmt.Sprintf("%.1f%%", share)))
	}

	return rows
}

func gradeRows(grades []*domain.GradeRecord) []core.Row {
	rows := []core.Row{
		text.NewRow(titleHeight, "Students", props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}),
		tableRow(headerProps, "USN", "Name", "Grade"),
	}

	for _, g := range grades {
		rows = append(rows, tableRow(cellProps, g.USN, g.StudentName, g.Grade))
	}

	return rows
}

func tableRow(p props.Text, first, second, third string) core.Row {
	return row.New(lineHeight).Add(
		text.NewCol(4, first, p),
		text.NewCol(5, second, p),
		text.NewCol(3, third, p),
	)
}
