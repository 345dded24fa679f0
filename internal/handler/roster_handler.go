package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classforge/classroom-backend/internal/middleware"
	"github.com/classforge/classroom-backend/internal/model"
	"github.com/classforge/classroom-backend/internal/repository"
	"github.com/classforge/classroom-backend/internal/response"
	"github.com/classforge/classroom-backend/internal/service"
	"github.com/classforge/classroom-backend/internal/validator"
)

// RosterHandler handles class roster management and join codes.
type RosterHandler struct {
	enrollmentService *service.EnrollmentService
}

// NewRosterHandler creates a new RosterHandler.
func NewRosterHandler(enrollmentService *service.EnrollmentService) *RosterHandler {
	return &RosterHandler{enrollmentService: enrollmentService}
}

// ListRoster godoc
// GET /api/v1/classes/:class_number/roster
// Lists all users enrolled in the class, instructors first.
func (h *RosterHandler) ListRoster(c *gin.Context) {
	roster, err := h.enrollmentService.ListRoster(c.Request.Context(), c.Param("class_number"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if roster == nil {
		roster = []model.RosterEntry{}
	}

	response.Success(c, http.StatusOK, gin.H{"roster": roster})
}

// AddStudent godoc
// POST /api/v1/classes/:class_number/students
// Enrolls a user into the class as a regular participant.
func (h *RosterHandler) AddStudent(c *gin.Context) {
	h.add(c, false)
}

// AddInstructor godoc
// POST /api/v1/classes/:class_number/instructors
// Enrolls a user into the class with the instructor flag.
func (h *RosterHandler) AddInstructor(c *gin.Context) {
	h.add(c, true)
}

func (h *RosterHandler) add(c *gin.Context, isInstructor bool) {
	var req model.AddToClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	err := h.enrollmentService.AddByUserName(c.Request.Context(), req.UserName, c.Param("class_number"), isInstructor)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
		case errors.Is(err, repository.ErrUnknownClass):
			response.Fail(c, http.StatusNotFound, response.ErrUnknownClass)
		case errors.Is(err, repository.ErrUnknownUser):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": "user enrolled successfully"})
}

// RemoveUser godoc
// DELETE /api/v1/classes/:class_number/roster/:user_id
// Removes a user's enrollment from the class.
func (h *RosterHandler) RemoveUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.enrollmentService.Remove(c.Request.Context(), userID, c.Param("class_number")); err != nil {
		if errors.Is(err, repository.ErrNotEnrolled) {
			response.Fail(c, http.StatusNotFound, response.ErrNotEnrolled)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "enrollment removed successfully"})
}

// IssueJoinCode godoc
// POST /api/v1/classes/:class_number/join-codes
// Creates a join code for the class.
func (h *RosterHandler) IssueJoinCode(c *gin.Context) {
	jc, err := h.enrollmentService.IssueJoinCode(c.Request.Context(), c.Param("class_number"))
	if err != nil {
		if errors.Is(err, repository.ErrUnknownClass) {
			response.Fail(c, http.StatusNotFound, response.ErrUnknownClass)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"join_code": jc})
}

// RedeemJoinCode godoc
// POST /api/v1/enrollments/redeem
// Enrolls the authenticated user into the class a join code points to.
func (h *RosterHandler) RedeemJoinCode(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.RedeemJoinCodeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	enrollment, err := h.enrollmentService.RedeemJoinCode(c.Request.Context(), claims.UserID, req.JoinCode)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrJoinCodeInvalid):
			response.Fail(c, http.StatusNotFound, response.ErrJoinCodeInvalid)
		case errors.Is(err, repository.ErrAlreadyEnrolled):
			response.Fail(c, http.StatusConflict, response.ErrAlreadyEnrolled)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"enrollment": enrollment})
}

// MyEnrollments godoc
// GET /api/v1/enrollments
// Lists the authenticated user's enrollments.
func (h *RosterHandler) MyEnrollments(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	enrollments, err := h.enrollmentService.ListForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if enrollments == nil {
		enrollments = []model.Enrollment{}
	}

	response.Success(c, http.StatusOK, gin.H{"enrollments": enrollments})
}
