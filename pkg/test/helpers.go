package test

import (
	"context"
	"log"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"usertasks/internal/adapter/database/sqlite"
	"usertasks/internal/core/domain"
)

// InitTestDB opens a private in-memory database with every migration applied.
func InitTestDB() *sqlite.DB {
	db, err := sqlite.NewDB(sqlite.Options{Path: sqlite.MemoryPath, LogLevel: "warn"})

	if err != nil {
		log.Fatal(err)
	}

	return db
}

func SeedUsers(t *testing.T, db *sqlite.DB, users ...domain.User) {
	t.Helper()

	for _, user := range users {
		insert(t, db, db.QueryBuilder.Insert("users").
			Columns("id", "name", "email", "password", "created_at").
			Values(user.ID, user.Name, user.Email, user.EncryptedPassword, user.CreatedAt))
	}
}

func SeedTasks(t *testing.T, db *sqlite.DB, tasks ...domain.Task) {
	t.Helper()

	for _, task := range tasks {
		insert(t, db, db.QueryBuilder.Insert("tasks").
			Columns("id", "title", "description", "status", "created_at").
			Values(task.ID, task.Title, task.Description, int(task.Status), task.CreatedAt))
	}
}

// AssignTask links a user to a task through users_tasks.
func AssignTask(t *testing.T, db *sqlite.DB, userID, taskID string) {
	t.Helper()

	insert(t, db, db.QueryBuilder.Insert("users_tasks").
		Columns("user_id", "task_id").
		Values(userID, taskID))
}

// CountRows counts the rows of table matching where (every row when nil).
func CountRows(t *testing.T, db *sqlite.DB, table string, where sq.Sqlizer) int {
	t.Helper()

	query := db.QueryBuilder.Select("COUNT(*)").From(table)

	if where != nil {
		query = query.Where(where)
	}

	stmt, args, err := query.ToSql()

	if err != nil {
		t.Fatalf("Failed to build count for table %s: %v", table, err)
	}

	var count int

	if err := db.QueryRowContext(context.Background(), stmt, args...).Scan(&count); err != nil {
		t.Fatalf("Failed to count table %s: %v", table, err)
	}

	return count
}

// CleanDB empties every table, association rows first.
func CleanDB(t *testing.T, db *sqlite.DB) {
	t.Helper()

	for _, table := range []string{"users_tasks", "tasks", "users"} {
		stmt, args, err := db.QueryBuilder.Delete(table).ToSql()

		if err != nil {
			t.Fatalf("Failed to build delete for table %s: %v", table, err)
		}

		if _, err := db.ExecContext(context.Background(), stmt, args...); err != nil {
			t.Fatalf("Failed to execute delete for table %s: %v", table, err)
		}
	}
}

func insert(t *testing.T, db *sqlite.DB, query sq.InsertBuilder) {
	t.Helper()

	stmt, args, err := query.ToSql()

	if err != nil {
		t.Fatalf("Failed to build insert: %v", err)
	}

	if _, err := db.ExecContext(context.Background(), stmt, args...); err != nil {
		t.Fatalf("Failed to insert fixture: %v", err)
	}
}
