package model

type Note struct {
	ID     uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	UserID string `gorm:"index;not null" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Tag         string `json:"tag"`
	// Unix millisecond timestamp
	CreatedAt int64 `gorm:"not null" json:"created_at"`
}
