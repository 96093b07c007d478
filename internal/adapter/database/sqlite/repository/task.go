package repository

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"

	"usertasks/internal/adapter/database/sqlite"
	"usertasks/internal/core/domain"
	"usertasks/internal/core/port"
	tel "usertasks/internal/core/telemetry"
)

var taskColumns = []string{"id", "title", "description", "status", "created_at"}

type TaskRepository struct {
	db        *sqlite.DB
	telemetry port.Telemetry
}

func NewTaskRepository(db *sqlite.DB, telemetry port.Telemetry) port.TaskRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TaskRepository{
		db:        db,
		telemetry: telemetry,
	}
}

func (tr *TaskRepository) GetAll(ctx context.Context) (tasks []domain.Task, err error) {
	ctx, done := tel.Observe(ctx, tr.telemetry, "GetAll", "task", map[string]interface{}{
		"db.system": "sqlite",
		"db.table":  "tasks",
	})
	defer func() { done(err) }()

	return tr.list(ctx, tr.db.QueryBuilder.Select(taskColumns...).From("tasks").OrderBy("id"))
}

func (tr *TaskRepository) Search(ctx context.Context, term string) (tasks []domain.Task, err error) {
	ctx, done := tel.Observe(ctx, tr.telemetry, "Search", "task", map[string]interface{}{
		"db.system":   "sqlite",
		"db.table":    "tasks",
		"search.term": term,
	})
	defer func() { done(err) }()

	pattern := "%" + term + "%"

	query := tr.db.QueryBuilder.Select(taskColumns...).
		From("tasks").
		Where(sq.Or{
			sq.Like{"title": pattern},
			sq.Like{"description": pattern},
		}).
		OrderBy("id")

	return tr.list(ctx, query)
}

func (tr *TaskRepository) list(ctx context.Context, query sq.SelectBuilder) ([]domain.Task, error) {
	stmt, args, err := query.ToSql()

	if err != nil {
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

	if err != nil {
		slog.Error("Error listing tasks", "error", err)
		return nil, err
	}

	return sqlite.CollectRows(rows, scanTask)
}

func scanTask(rows *sql.Rows, task *domain.Task) error {
	return rows.Scan(&task.ID, &task.Title, &task.Description, &task.Status, &task.CreatedAt)
}
