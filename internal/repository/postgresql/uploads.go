package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const TableUploads = "uploads"

type UploadsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUploadsRepository(pool *pgxpool.Pool) *UploadsRepository {
	return &UploadsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UploadsRepository) SaveUpload(ctx context.Context, upload *domain.Upload) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUploads).
		Columns(
			"filename",
			"username",
			"source",
			"status",
			"parsed",
			"records_added",
			"error_message",
			"processed_at",
		).
		Values(
			upload.Filename,
			upload.Username,
			upload.Source,
			upload.Status,
			upload.Parsed,
			upload.RecordsAdded,
			upload.ErrorMessage,
			upload.ProcessedAt,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&upload.ID); err != nil {
		return scanRowError(err)
	}

	return nil
}

func (r *UploadsRepository) Uploads(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableUploads).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(
			"id",
			"filename",
			"username",
			"source",
			"status",
			"parsed",
			"records_added",
			"error_message",
			"processed_at",
		).
		From(TableUploads).
		OrderBy("id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	uploads, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.Upload])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	return uploads, total, nil
}
