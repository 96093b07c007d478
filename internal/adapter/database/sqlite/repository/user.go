package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"usertasks/internal/adapter/database/sqlite"
	"usertasks/internal/core/domain"
	"usertasks/internal/core/port"
	tel "usertasks/internal/core/telemetry"
)

var userColumns = []string{"id", "name", "email", "password", "created_at"}

type UserRepository struct {
	db        *sqlite.DB
	telemetry port.Telemetry
}

func NewUserRepository(db *sqlite.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func (ur *UserRepository) GetAll(ctx context.Context) (users []domain.User, err error) {
	ctx, done := tel.Observe(ctx, ur.telemetry, "GetAll", "user", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "users",
	})
	defer func() { done(err) }()

	return ur.list(ctx, ur.db.QueryBuilder.Select(userColumns...).From("users").OrderBy("id"))
}

func (ur *UserRepository) SearchByName(ctx context.Context, term string) (users []domain.User, err error) {
	ctx, done := tel.Observe(ctx, ur.telemetry, "SearchByName", "user", map[string]interface{}{
		"db.system":   "sqlite",
		"db.table":    "users",
		"search.term": term,
	})
	defer func() { done(err) }()

	query := ur.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(sq.Like{"name": "%" + term + "%"}).
		OrderBy("id")

	return ur.list(ctx, query)
}

func (ur *UserRepository) Create(ctx context.Context, user domain.User) (_ domain.User, err error) {
	ctx, done := tel.Observe(ctx, ur.telemetry, "Create", "user", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "users",
		"user.id":   user.ID,
	})
	defer func() { done(err) }()

	stmt, args, err := ur.db.QueryBuilder.Insert("users").
		Columns(userColumns...).
		Values(user.ID, user.Name, user.Email, user.EncryptedPassword, user.CreatedAt).
		ToSql()

	if err != nil {
		return domain.User{}, err
	}

	if _, err = ur.db.ExecContext(ctx, stmt, args...); err != nil {
		if column, ok := sqlite.UniqueViolation(err); ok {
			return domain.User{}, domain.NewUserConflict(column, err)
		}

		slog.Error("Error creating user", "error", err)
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}

	ur.telemetry.RecordBusinessEvent(ctx, "created", "user", user.ID, map[string]interface{}{
		"user.email": user.Email,
	})

	return user, nil
}

func (ur *UserRepository) DeleteCascade(ctx context.Context, id string) (err error) {
	ctx, done := tel.Observe(ctx, ur.telemetry, "DeleteCascade", "user", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "users",
		"user.id":   id,
	})
	defer func() { done(err) }()

	tx, err := ur.db.BeginTx(ctx, nil)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return err
	}

	defer tx.Rollback()

	if _, err = ur.exec(ctx, tx, ur.db.QueryBuilder.Delete("users_tasks").Where(sq.Eq{"user_id": id})); err != nil {
		return fmt.Errorf("delete user tasks: %w", err)
	}

	result, err := ur.exec(ctx, tx, ur.db.QueryBuilder.Delete("users").Where(sq.Eq{"id": id}))

	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()

	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFound("id", domain.MsgUserIDNotFound)
	}

	if err = tx.Commit(); err != nil {
		return err
	}

	ur.telemetry.RecordBusinessEvent(ctx, "deleted", "user", id, nil)

	return nil
}

func (ur *UserRepository) exec(ctx context.Context, tx *sql.Tx, query sq.DeleteBuilder) (sql.Result, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	return tx.ExecContext(ctx, stmt, args...)
}

func (ur *UserRepository) list(ctx context.Context, query sq.SelectBuilder) ([]domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing users", "error", err)
		return nil, err
	}

	return sqlite.CollectRows(rows, scanUser)
}

func scanUser(rows *sql.Rows, user *domain.User) error {
	return rows.Scan(&user.ID, &user.Name, &user.Email, &user.EncryptedPassword, &user.CreatedAt)
}
