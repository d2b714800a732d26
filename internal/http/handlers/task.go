package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DevSolex/todo-app/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	ID          int64   `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsCompleted *bool   `json:"is_completed"`
}

func (h *Handler) CreateTask(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "user_id must be an integer")
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "All fields are required")
		return
	}
	if req.Title == "" || req.Description == "" {
		fail(c, http.StatusUnprocessableEntity, "All fields are required")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusNotFound, "User does not exist")
			return
		}
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	task, err := h.Tasks.Create(ctx, req.Title, req.Description, userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusCreated, task, "Task created successfully")
}

func (h *Handler) ListUserTasks(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "id must be an integer")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusNotFound, "User does not exist")
			return
		}
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	tasks, err := h.Tasks.ListByUser(ctx, userID)
	if err != nil {
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	// A user with no tasks gets an empty list, not null.
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	respond(c, http.StatusOK, tasks, "All user tasks retrieved successfully")
}

func (h *Handler) UpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	task, err := h.Tasks.Update(c.Request.Context(), req.ID, domain.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		IsCompleted: req.IsCompleted,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			fail(c, http.StatusNotFound, "Task not found")
			return
		}
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusOK, task, "Task updated successfully")
}
