package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/DevSolex/todo-app/internal/domain"
	"github.com/DevSolex/todo-app/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// userView is the registration response shape. It simply has no password
// field; nothing redacts the stored value anywhere else.
type userView struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Handler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Todo App"})
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}
	if req.Username == "" || req.Password == "" {
		fail(c, http.StatusBadRequest, "All fields are required")
		return
	}

	ctx := c.Request.Context()

	_, err := h.Users.GetByUsername(ctx, req.Username)
	if err == nil {
		fail(c, http.StatusConflict, "User already exists")
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	user, err := h.Users.Create(ctx, req.Username, req.Password)
	if err != nil {
		// The existence check above is not atomic with the insert; a
		// concurrent registration of the same username surfaces here as a
		// unique constraint violation.
		if errors.Is(err, repository.ErrUsernameTaken) {
			fail(c, http.StatusConflict, "User already exists")
			return
		}
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	respond(c, http.StatusCreated, userView{
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, "User created successfully")
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	respond(c, http.StatusOK, users, "All users retrieved successfully")
}
