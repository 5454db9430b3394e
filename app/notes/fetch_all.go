// Package notes implements the per-owner note CRUD behind the auth gate
package notes

import (
	"net/http"

	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FetchAll returns every note owned by the authenticated user, newest first.
func FetchAll(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	notes := []model.Note{}

	err := d.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&notes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": notes,
	})
}
