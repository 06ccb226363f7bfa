package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Application struct {
	ID               string            `gorm:"type:uuid;primaryKey" json:"id"`
	GigID            string            `gorm:"not null;uniqueIndex:idx_gig_applicant" json:"gig_id"`
	ApplicantID      string            `gorm:"not null;uniqueIndex:idx_gig_applicant" json:"applicant_id"`
	CoverLetter      string            `gorm:"not null" json:"cover_letter"`
	ProposedRate     *float64          `json:"proposed_rate"`
	ProposedTimeline string            `gorm:"not null" json:"proposed_timeline"`
	PortfolioLinks   datatypes.JSON    `json:"portfolio_links"`
	Status           ApplicationStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	AppliedAt        time.Time         `gorm:"autoCreateTime" json:"applied_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relations
	Gig       *Gig  `gorm:"foreignKey:GigID" json:"gig,omitempty"`
	Applicant *User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}

// BeforeCreate - uuid на стороне приложения, как в BaseModel.
// Application не использует BaseModel из-за поля applied_at вместо created_at.
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
