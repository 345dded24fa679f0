package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/response"
	"github.com/classforge/classroom-backend/internal/service"
	"github.com/classforge/classroom-backend/internal/validator"
)

// ClassHandler handles admin-facing class management (CRUD).
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ListClasses godoc
// GET /api/v1/classes
// Lists all classes without pagination.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if classes == nil {
		classes = []model.Class{}
	}

	response.Success(c, http.StatusOK, gin.H{"classes": classes})
}

// GetClass godoc
// GET /api/v1/classes/:class_number
// Returns a single class.
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classService.GetByNumber(c.Request.Context(), c.Param("class_number"))
	if err != nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"class": class})
}

// CreateClass godoc
// POST /api/v1/admin/classes
// Creates a new class.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class := &model.Class{
		ClassNumber:      req.ClassNumber,
		ClassDescription: req.ClassDescription,
	}

	if err := h.classService.Create(c.Request.Context(), class); err != nil {
		if errors.Is(err, repository.ErrDuplicateClass) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"class": class})
}

// UpdateClass godoc
// PUT /api/v1/admin/classes/:class_number
// Updates a class description.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class := &model.Class{
		ClassNumber:      c.Param("class_number"),
		ClassDescription: req.ClassDescription,
	}

	if err := h.classService.Update(c.Request.Context(), class); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.classService.GetByNumber(c.Request.Context(), class.ClassNumber)

	response.Success(c, http.StatusOK, gin.H{"class": updated})
}

// DeleteClass godoc
// DELETE /api/v1/admin/classes/:class_number
// Deletes a class. Will fail while users are enrolled.
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	if err := h.classService.Delete(c.Request.Context(), c.Param("class_number")); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			response.Fail(c, http.StatusConflict, response.ErrDependencyExists)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "class deleted successfully"})
}
