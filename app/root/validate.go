package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Validate sits behind the JWT middleware, so reaching it at all means the
// token checked out. The frontend uses it to decide whether a stored token is
// still worth keeping.
func Validate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userID":  c.MustGet("userID").(string),
	})
}
