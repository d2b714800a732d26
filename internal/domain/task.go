package domain

import "time"

// Task is the persisted tasks row.
type Task struct {
	ID          int64     `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	IsCompleted bool      `db:"is_completed" json:"is_completed"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
	UserID      int64     `db:"user_id" json:"user_id"`
}

// TaskUpdate carries a partial update. A nil field means "leave unchanged",
// which keeps "unset" distinct from "set to empty/false".
type TaskUpdate struct {
	Title       *string
	Description *string
	IsCompleted *bool
}
