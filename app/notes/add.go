package notes

import (
	"net/http"
	"time"

	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/internal/model"
	"hexanotes/notes-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Notes created without an explicit tag get this one.
const defaultTag = "General"

type addNoteBody struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tag         string `json:"tag"`
}

// Add creates a note for the authenticated user and returns it.
func Add(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data addNoteBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Tag == "" {
		data.Tag = defaultTag
	}

	for _, err := range []error{
		validators.TitleValidator(data.Title),
		validators.DescriptionValidator(data.Description),
		validators.TagValidator(data.Tag),
	} {
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success":   false,
				"message":   err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	note := model.Note{
		UserID:      userID,
		Title:       data.Title,
		Description: data.Description,
		Tag:         data.Tag,
		CreatedAt:   time.Now().UnixMilli(),
	}

	if err := d.DB.Create(&note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, note)
}
