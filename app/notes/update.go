package notes

import (
	"net/http"

	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/internal/model"
	"hexanotes/notes-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type updateNoteBody struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Tag         *string `json:"tag,omitempty"`
}

// Update applies a partial edit to a note. The note must exist and belong to
// the caller, looked up in that order so a foreign note answers 403, not 404.
func Update(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	noteID := c.Param("id")
	if noteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "No note ID provided",
			"requestID": requestID,
		})
		return
	}

	var data updateNoteBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Title == nil && data.Description == nil && data.Tag == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "No fields to update",
			"requestID": requestID,
		})
		return
	}

	if data.Title != nil {
		if err := validators.TitleValidator(*data.Title); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if data.Description != nil {
		if err := validators.DescriptionValidator(*data.Description); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if data.Tag != nil {
		if err := validators.TagValidator(*data.Tag); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	var note model.Note

	err := d.DB.
		Where("id = ?", noteID).
		First(&note).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success":   false,
				"message":   "Note not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if note.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"success":   false,
			"message":   "You don't own this note",
			"requestID": requestID,
		})
		return
	}

	if data.Title != nil {
		note.Title = *data.Title
	}
	if data.Description != nil {
		note.Description = *data.Description
	}
	if data.Tag != nil {
		note.Tag = *data.Tag
	}

	if err := d.DB.Save(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, note)
}
