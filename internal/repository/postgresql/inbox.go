package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const TableInboxFiles = "inbox_files"

type InboxRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewInboxRepository(pool *pgxpool.Pool) *InboxRepository {
	return &InboxRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *InboxRepository) Files(ctx context.Context) ([]*domain.InboxFile, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"name",
			"status",
			"records_added",
			"error_message",
			"processed_at",
		).
		From(TableInboxFiles).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	files, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[domain.InboxFile])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return files, nil
}

func (r *InboxRepository) UpdateOrCreateFile(ctx context.Context, file *domain.InboxFile) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableInboxFiles).
		Columns(
			"name",
			"status",
			"records_added",
			"error_message",
			"processed_at",
		).
		Values(
			file.Name,
			file.Status,
			file.RecordsAdded,
			file.ErrorMessage,
			file.ProcessedAt,
		).
		Suffix(`ON CONFLICT (name) DO UPDATE SET
			status = EXCLUDED.status,
			records_added = EXCLUDED.records_added,
			error_message = EXCLUDED.error_message,
			processed_at = EXCLUDED.processed_at
		`).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// ResetProcessingFiles returns files claimed by a previous run to pending.
func (r *InboxRepository) ResetProcessingFiles(ctx context.Context) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableInboxFiles).
		Set("status", domain.StatusPending).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}
