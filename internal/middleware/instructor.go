package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classforge/classroom-backend/internal/response"
	"github.com/classforge/classroom-backend/internal/service"
)

// RequireClassInstructor allows admins through unconditionally and
// otherwise requires the caller to hold the instructor flag in the class
// named by the :class_number route param.
func RequireClassInstructor(enrollmentService *service.EnrollmentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		if claims.IsAdmin {
			c.Next()
			return
		}

		classNumber := c.Param("class_number")
		isInstructor, err := enrollmentService.IsInstructor(c.Request.Context(), claims.UserID, classNumber)
		if err != nil || !isInstructor {
			response.AbortFail(c, http.StatusForbidden, response.ErrInstructorOnly)
			return
		}

		c.Next()
	}
}
