package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/apperror"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

var statusByKind = map[apperror.Kind]int{
	apperror.KindNotFound:     http.StatusNotFound,
	apperror.KindValidation:   http.StatusBadRequest,
	apperror.KindUnknownState: http.StatusInternalServerError,
	apperror.KindAccessDenied: http.StatusForbidden,
	apperror.KindConflict:     http.StatusConflict,
}

// StatusFor maps an error kind to its HTTP status; unknown kinds are 500.
func StatusFor(kind apperror.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError writes the envelope for err. Errors without a kind are attached
// to the gin context for the access log and reported as a generic 500.
func FromError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, string(apperror.KindInternal), "Internal server error")
		return
	}
	Error(c, StatusFor(kind), string(kind), err.Error())
}
