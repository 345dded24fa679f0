package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/response"
	"github.com/classforge/classroom-backend/internal/service"
	"github.com/classforge/classroom-backend/internal/validator"
)

// UserHandler handles admin-facing user management (CRUD).
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// ListUsers godoc
// GET /api/v1/admin/users
// Lists users with pagination, optionally filtered by class_number.
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	var classNumber *string
	if cn := c.Query("class_number"); cn != "" {
		classNumber = &cn
	}

	users, pagination, err := h.userService.ListUsers(c.Request.Context(), classNumber, page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"users": users}, pagination)
}

// CreateUser godoc
// POST /api/v1/admin/users
// Creates a user account, optionally with the admin flag. The default
// class enrollment applies exactly as it does for self-registration.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	user := &model.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		UserName:     req.UserName,
		Email:        req.Email,
		PasswordHash: hash,
		IsAdmin:      req.IsAdmin,
	}

	if err := h.userService.Register(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUserName):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case errors.Is(err, repository.ErrUnknownClass):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrUnknownClass)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": user})
}

// GetUser godoc
// GET /api/v1/admin/users/:id
// Returns a single user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdateUser godoc
// PUT /api/v1/admin/users/:id
// Updates a user's basic info and optionally the password.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateUserRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user := &model.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}

	if err := h.userService.Update(c.Request.Context(), user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUserName) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if req.Password != "" {
		hash, err := h.authService.HashPassword(req.Password)
		if err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
		if err := h.userService.UpdatePassword(c.Request.Context(), id, hash); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	}

	updated, _ := h.userService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"user": updated})
}

// DeleteUser godoc
// DELETE /api/v1/admin/users/:id
// Deletes a user. Fails while the user is still enrolled anywhere.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "user deleted successfully"})
}

// ResetUserSession godoc
// POST /api/v1/admin/users/:id/reset-session
// Clears a user's active Redis session, allowing a fresh login.
func (h *UserHandler) ResetUserSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), id); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "user session reset successfully"})
}
