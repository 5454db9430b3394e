// Package auth implements the passwordless OTP flow: request a code by mail,
// then trade it for a bearer token via login or signup
package auth

import (
	"net/http"

	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type sendOTPBody struct {
	Email string `json:"email"`
}

// SendOTP issues a fresh code for the email and dispatches it by mail. The
// code is never echoed back to the caller. Re-requesting overwrites the
// previous code, so only the newest mail is usable.
func SendOTP(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data sendOTPBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	code, err := d.OTP.Issue(data.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate OTP", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.Mail.SendOTPMail(data.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Failed to send OTP email",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send OTP email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "OTP sent successfully",
	})
}
