package auth

import (
	"net/http"

	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// Login checks the OTP for an existing user and returns a bearer token. The
// code is consumed atomically with verification, so a replayed login with the
// same code always fails.
func Login(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var user model.User

	if err := d.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success":   false,
				"message":   "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !d.OTP.VerifyAndConsume(data.Email, data.OTP) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success":   false,
			"message":   "Invalid or expired OTP",
			"requestID": requestID,
		})
		return
	}

	authToken, err := makeAuthToken(user.ID, requestID, c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"authToken": authToken,
		"message":   "Login successful",
	})
}
