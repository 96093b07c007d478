package repository

import (
	"context"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	database "usertasks/internal/adapter/database/postgres"
	domain "usertasks/internal/core/domain"
	port "usertasks/internal/core/port"
	tel "usertasks/internal/core/telemetry"
)

var userColumns = []string{"id", "name", "email", "password", "created_at"}

type UserRepository struct {
	db        *database.DB
	telemetry port.Telemetry
}

func NewUserRepository(db *database.DB, telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{db: db, telemetry: telemetry}
}

func (ur *UserRepository) GetAll(ctx context.Context) (users []domain.User, err error) {
	ctx, done := tel.Observe(ctx, ur.telemetry, "GetAll", "user", map[string]interface{}{
		"db.system": "postgresql",
		"db.table":  "users",
	})
	defer func() { done(err) }()

	return ur.list(ctx, ur.db.QueryBuilder.Select(userColumns...).From("users").OrderBy("id"))
}

func (ur *UserRepository) SearchByName(ctx context.Context, term string) (users []domain.User, err error) {
	ctx, done := tel.Observe(ctx, ur.telemetry, "SearchByName", "user", map[string]interface{}{
		"db.system":   "postgresql",
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
		"db.system": "postgresql",
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

	if _, err = ur.db.Exec(ctx, stmt, args...); err != nil {
		if column, ok := database.UniqueViolation(err); ok {
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
		"db.system": "postgresql",
		"db.table":  "users",
		"user.id":   id,
	})
	defer func() { done(err) }()

	tx, err := ur.db.Begin(ctx)

	if err != nil {
		slog.Error("Error starting transaction", "error", err)
		return err
	}

	defer tx.Rollback(ctx)

	stmt, args, err := ur.db.QueryBuilder.Delete("users_tasks").Where(sq.Eq{"user_id": id}).ToSql()

	if err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("delete user tasks: %w", err)
	}

	stmt, args, err = ur.db.QueryBuilder.Delete("users").Where(sq.Eq{"id": id}).ToSql()

	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, stmt, args...)

	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return domain.NewNotFound("id", domain.MsgUserIDNotFound)
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}

	ur.telemetry.RecordBusinessEvent(ctx, "deleted", "user", id, nil)

	return nil
}

func (ur *UserRepository) list(ctx context.Context, query sq.SelectBuilder) ([]domain.User, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := ur.db.Query(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing users", "error", err)
		return nil, err
	}

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.User])

	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}
