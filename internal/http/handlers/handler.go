package handlers

import (
	"context"

	"github.com/DevSolex/todo-app/internal/domain"
	"github.com/DevSolex/todo-app/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore is the user data access surface the handlers need. The concrete
// implementation is repository.UserRepository; tests substitute mocks.
type UserStore interface {
	Create(ctx context.Context, username, password string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// TaskStore is the task data access surface the handlers need.
type TaskStore interface {
	Create(ctx context.Context, title, description string, userID int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, upd domain.TaskUpdate) (*domain.Task, error)
}

type Handler struct {
	DB    *pgxpool.Pool
	Users UserStore
	Tasks TaskStore
}

func NewHandler(db *pgxpool.Pool) *Handler {
	return &Handler{
		DB:    db,
		Users: repository.NewUserRepository(db),
		Tasks: repository.NewTaskRepository(db),
	}
}
