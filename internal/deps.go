package internal

import (
	"hexanotes/notes-api/internal/otp"
	"hexanotes/notes-api/internal/service"

	"gorm.io/gorm"
)

type Deps struct {
	DB   *gorm.DB
	OTP  *otp.Store
	Mail service.Mailer
}
