package postgresql

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/result_analysis/internal/domain"
)

const TableUsers = "users"

type UsersRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewUsersRepository(pool *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *UsersRepository) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("id", "username", "password_hash", "is_admin").
		From(TableUsers).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	user, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, collectRowsError(err)
	}

	return user, nil
}

func (r *UsersRepository) CreateUser(ctx context.Context, user *domain.User) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableUsers).
		Columns("username", "password_hash", "is_admin").
		Values(user.Username, user.PasswordHash, user.IsAdmin).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if err := db.QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return scanRowError(err)
	}

	return nil
}
