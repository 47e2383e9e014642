package domain

import "strings"

const utf8BOM = "\ufeff"

const (
	ColumnUSN         = "usn"
	ColumnStudentName = "student_name"
	ColumnCourseName  = "course_name"
	ColumnBatchYear   = "batch_year"
	ColumnSemester    = "semester"
	ColumnGrade       = "grade"
)

// GradeColumns is the canonical column order used when a store writes a fresh header.
var GradeColumns = []string{
	ColumnUSN,
	ColumnStudentName,
	ColumnCourseName,
	ColumnBatchYear,
	ColumnSemester,
	ColumnGrade,
}

// DefaultRequiredColumns must be present in every uploaded sheet.
var DefaultRequiredColumns = []string{
	ColumnBatchYear,
	ColumnSemester,
	ColumnCourseName,
	ColumnUSN,
	ColumnGrade,
}

// columnAliases maps alternative header names onto GradeRecord columns.
var columnAliases = map[string]string{
	"roll_no": ColumnUSN,
	"rollno":  ColumnUSN,
}

// NormalizeColumn canonicalizes a header cell: BOM and surrounding spaces are
// dropped, case is folded and known aliases are resolved.
func NormalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, utf8BOM)))
	if alias, ok := columnAliases[name]; ok {
		return alias
	}
	return name
}

type GradeRecord struct {
	USN         string `csv:"usn"          db:"usn"          json:"usn"`
	StudentName string `csv:"student_name" db:"student_name" json:"student_name"`
	CourseName  string `csv:"course_name"  db:"course_name"  json:"course_name"`
	BatchYear   string `csv:"batch_year"   db:"batch_year"   json:"batch_year"`
	Semester    string `csv:"semester"     db:"semester"     json:"semester"`
	Grade       string `csv:"grade"        db:"grade"        json:"grade"`
}

// NaturalKey identifies one student's grade for one course in one term.
type NaturalKey struct {
	USN        string `db:"usn"`
	CourseName string `db:"course_name"`
	BatchYear  string `db:"batch_year"`
	Semester   string `db:"semester"`
}

func NewNaturalKey(usn, courseName, batchYear, semester string) NaturalKey {
	return NaturalKey{
		USN:        strings.TrimSpace(usn),
		CourseName: strings.TrimSpace(courseName),
		BatchYear:  strings.TrimSpace(batchYear),
		Semester:   strings.TrimSpace(semester),
	}
}

func (g *GradeRecord) Key() NaturalKey {
	return NewNaturalKey(g.USN, g.CourseName, g.BatchYear, g.Semester)
}

// Field returns the value stored under a canonical column name.
func (g *GradeRecord) Field(column string) string {
	switch column {
	case ColumnUSN:
		return g.USN
	case ColumnStudentName:
		return g.StudentName
	case ColumnCourseName:
		return g.CourseName
	case ColumnBatchYear:
		return g.BatchYear
	case ColumnSemester:
		return g.Semester
	case ColumnGrade:
		return g.Grade
	default:
		return ""
	}
}

// KeySet is the set of natural keys already present in a destination store.
type KeySet map[NaturalKey]struct{}

func NewKeySet(keys ...NaturalKey) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set.Add(k)
	}
	return set
}

func (s KeySet) Add(k NaturalKey) {
	s[k] = struct{}{}
}

func (s KeySet) Has(k NaturalKey) bool {
	_, ok := s[k]
	return ok
}
