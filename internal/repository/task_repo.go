package repository

import (
	"context"

	"github.com/DevSolex/todo-app/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task for the given user with is_completed false and
// returns the persisted row. The caller is responsible for having verified
// that the user exists.
func (r *TaskRepository) Create(ctx context.Context, title, description string, userID int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO tasks (title, description, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, description, is_completed, created_at, updated_at, user_id`,
		title, description, userID,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt, &t.UserID); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, is_completed, created_at, updated_at, user_id
		 FROM tasks
		 WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, is_completed, created_at, updated_at, user_id FROM tasks`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

// Update loads the task, applies only the fields set in upd, persists with a
// refreshed updated_at and returns the updated row. Returns pgx.ErrNoRows
// when no task with that id exists.
func (r *TaskRepository) Update(ctx context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, is_completed, created_at, updated_at, user_id
		 FROM tasks
		 WHERE id = $1`,
		id,
	)

	var t domain.Task
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt, &t.UserID); err != nil {
		return nil, err
	}

	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	if upd.IsCompleted != nil {
		t.IsCompleted = *upd.IsCompleted
	}

	row = r.db.QueryRow(ctx,
		`UPDATE tasks
		 SET title = $1, description = $2, is_completed = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING id, title, description, is_completed, created_at, updated_at, user_id`,
		t.Title, t.Description, t.IsCompleted, id,
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt, &t.UserID); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows pgx.Rows) ([]*domain.Task, error) {
	var res []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt, &t.UserID); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}
