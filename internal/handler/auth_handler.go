package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classforge/classroom-backend/internal/middleware"
	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/response"
	"github.com/classforge/classroom-backend/internal/service"
	"github.com/classforge/classroom-backend/internal/validator"
)

// AuthHandler handles registration and authentication endpoints.
type AuthHandler struct {
	authService       *service.AuthService
	userService       *service.UserService
	enrollmentService *service.EnrollmentService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *service.AuthService,
	userService *service.UserService,
	enrollmentService *service.EnrollmentService,
) *AuthHandler {
	return &AuthHandler{
		authService:       authService,
		userService:       userService,
		enrollmentService: enrollmentService,
	}
}

// Register godoc
// POST /api/v1/auth/register
// Creates a new account. The new user is enrolled into the default class
// in the same transaction as the account insert; if that enrollment fails
// (e.g. the default class is missing), no account is created.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
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

	token, err := h.authService.GenerateToken(c.Request.Context(), user.ID, user.IsAdmin)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, model.LoginResponse{Token: token, User: *user})
}

// Login godoc
// POST /api/v1/auth/login
// Validates user name + password and returns a JWT. A new login replaces
// any previous session of the same user.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.GetByUserName(c.Request.Context(), req.UserName)
	if err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateToken(c.Request.Context(), user.ID, user.IsAdmin)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{Token: token, User: *user})
}

// Logout godoc
// POST /api/v1/auth/logout
// Logs out the currently authenticated user.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims.UserID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the profile and enrollments of the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	enrollments, err := h.enrollmentService.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":        user,
		"enrollments": enrollments,
	})
}
