package auth

import (
	"net/http"

	"hexanotes/notes-api/internal"
	"hexanotes/notes-api/internal/model"
	"hexanotes/notes-api/pkg/security"
	"hexanotes/notes-api/pkg/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type signupBody struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	DOB      string `json:"dob"`
	OTP      string `json:"otp"`
}

// Signup creates a user once the OTP for their email checks out. Proving
// control of the address is the whole identity check, so the account is
// created verified.
func Signup(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data signupBody
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

	if err := validators.FullNameValidator(data.FullName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
		return
	}

	dob, err := validators.DOBValidator(data.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success":   false,
			"message":   err.Error(),
			"requestID": requestID,
		})
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

	var found bool

	r := d.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		First(&found)
	if r.Error != nil && r.Error != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if user is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if found {
		c.JSON(http.StatusConflict, gin.H{
			"success":   false,
			"message":   "This email is already registered. Please login instead",
			"requestID": requestID,
		})
		return
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := d.DB.Create(&model.User{
		ID:       userID,
		FullName: data.FullName,
		DOB:      dob,
		Email:    data.Email,
		Verified: true,
	}).Error; err != nil {
		// The unique index on email is the backstop for two signups racing
		// past the count check.
		c.JSON(http.StatusConflict, gin.H{
			"success":   false,
			"message":   "This email is already registered. Please login instead",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	authToken, err := makeAuthToken(userID, requestID, c)
	if err != nil {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"authToken": authToken,
		"message":   "Signup successful",
	})
}

// makeAuthToken mints a token and writes the 500 response itself on failure,
// callers just bail out on error.
func makeAuthToken(userID, requestID string, c *gin.Context) (string, error) {
	authToken, err := security.MakeAuthToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"message":   "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate JWT auth token", zap.Error(err), zap.String("requestID", requestID))
		return "", err
	}

	return authToken, nil
}
