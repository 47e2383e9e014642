package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const TableGrades = "grades"

var gradeColumns = []string{
	"usn",
	"student_name",
	"course_name",
	"batch_year",
	"semester",
	"grade",
}

type GradesRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewGradesRepository(pool *pgxpool.Pool) *GradesRepository {
	return &GradesRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *GradesRepository) GradeKeys(ctx context.Context) (domain.KeySet, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("usn", "course_name", "batch_year", "semester").
		From(TableGrades).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	keys, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.NaturalKey])
	if err != nil {
		return nil, collectRowsError(err)
	}

	set := make(domain.KeySet, len(keys))
	for _, k := range keys {
		set.Add(domain.NewNaturalKey(k.USN, k.CourseName, k.BatchYear, k.Semester))
	}

	return set, nil
}

// AppendGrades copies grades in order; a natural key collision aborts the whole copy.
func (r *GradesRepository) AppendGrades(ctx context.Context, grades []*domain.GradeRecord) error {
	db := extractDB(ctx, r.pool)

	copied, err := db.CopyFrom(ctx, pgx.Identifier{TableGrades}, gradeColumns,
		pgx.CopyFromSlice(len(grades), func(i int) ([]any, error) {
			return []any{
				grades[i].USN,
				grades[i].StudentName,
				grades[i].CourseName,
				grades[i].BatchYear,
				grades[i].Semester,
				grades[i].Grade,
			}, nil
		}))
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to save grades, concurrent upload added the same records: %w", err)
		}
		return fmt.Errorf("failed to save grades: %w", err)
	}

	if copied != int64(len(grades)) {
		return fmt.Errorf("failed to save grades: copied %d rows, expected %d", copied, len(grades))
	}

	return nil
}

func (r *GradesRepository) Batches(ctx context.Context) ([]string, error) {
	return r.distinct(ctx, "batch_year", sq.Eq{})
}

func (r *GradesRepository) Semesters(ctx context.Context, batch string) ([]string, error) {
	return r.distinct(ctx, "semester", sq.Eq{"batch_year": batch})
}

func (r *GradesRepository) Courses(ctx context.Context, batch, semester string) ([]string, error) {
	return r.distinct(ctx, "course_name", sq.Eq{"batch_year": batch, "semester": semester})
}

func (r *GradesRepository) CourseGrades(ctx context.Context, course domain.Course) ([]*domain.GradeRecord, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(gradeColumns...).
		From(TableGrades).
		Where(sq.Eq{
			"batch_year":  course.BatchYear,
			"semester":    course.Semester,
			"course_name": course.CourseName,
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	grades, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.GradeRecord])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return grades, nil
}

func (r *GradesRepository) distinct(ctx context.Context, column string, where sq.Eq) ([]string, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(column).
		Distinct().
		From(TableGrades).
		Where(where).
		OrderBy(column + " ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return values, nil
}
