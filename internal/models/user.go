package models

import "gorm.io/datatypes"

type User struct {
	BaseModel
	Email          string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	FullName       string         `gorm:"not null" json:"full_name"`
	Role           UserRole       `gorm:"type:varchar(20);not null" json:"role"`
	ProfilePicture string         `json:"profile_picture"`
	Bio            string         `json:"bio"`
	Skills         datatypes.JSON `json:"skills"`
	Location       string         `json:"location"`
	Website        string         `json:"website"`
	Phone          string         `json:"phone"`
	IsVerified     bool           `gorm:"default:false" json:"is_verified"`
	IsActive       bool           `gorm:"default:true" json:"-"`

	// Relations
	Gigs         []Gig         `gorm:"foreignKey:PostedBy" json:"-"`
	Applications []Application `gorm:"foreignKey:ApplicantID" json:"-"`
	SocialLogins []SocialLogin `gorm:"foreignKey:UserID" json:"-"`
}

// SocialLogin - привязка внешнего провайдера идентичности (google, linkedin).
// Заполняется только через auth.CredentialProvider; своих эндпоинтов нет.
type SocialLogin struct {
	BaseModel
	UserID     string `gorm:"not null;index" json:"user_id"`
	Provider   string `gorm:"not null;uniqueIndex:idx_provider_identity" json:"provider"`
	ProviderID string `gorm:"not null;uniqueIndex:idx_provider_identity" json:"provider_id"`
}

func (SocialLogin) TableName() string {
	return "user_social_logins"
}
