package models

// Fallback artwork applied at signup when the caller leaves the image
// fields unset. Kept as named constants so callers and tests never have
// to introspect schema defaults.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

type User struct {
	ID             uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username       string  `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Email          string  `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password       string  `json:"-" gorm:"type:varchar(255);not null"` // bcrypt digest, never plaintext
	ImageURL       string  `json:"image_url" gorm:"type:varchar(512)"`
	HeaderImageURL string  `json:"header_image_url" gorm:"type:varchar(512)"`
	Bio            *string `json:"bio,omitempty" gorm:"type:text"`
	Location       *string `json:"location,omitempty" gorm:"type:varchar(255)"`
}

func (User) TableName() string {
	return "users"
}
