package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit/internal/pkg/response"
)

const (
	SharerUserHeader = "X-Sharer-User-Id"
	UserIDKey        = "user_id"
)

// SharerUser reads the acting user id from X-Sharer-User-Id and stores it
// under "user_id". Requests without a valid positive id are rejected.
func SharerUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SharerUserHeader)
		if raw == "" {
			response.Error(c, http.StatusBadRequest, "MISSING_USER_ID", "Missing "+SharerUserHeader+" header")
			c.Abort()
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "MISSING_USER_ID", "Invalid "+SharerUserHeader+" header")
			c.Abort()
			return
		}

		c.Set(UserIDKey, id)
		c.Next()
	}
}
