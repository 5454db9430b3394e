// Package model defines database models
package model

import "time"

type User struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	FullName string    `gorm:"not null" json:"fullName"`
	DOB      time.Time `gorm:"not null" json:"dob"`
	Email    string    `gorm:"unique;not null" json:"email"`
	// Set at signup once the OTP for the address checked out. There is no
	// unverified state reachable through the API, the column exists so an
	// operator can flag accounts manually.
	Verified  bool      `gorm:"default:false" json:"verified"`
	CreatedAt time.Time `json:"created_at"`

	Notes []Note `gorm:"foreignKey:UserID" json:"-"`
}
