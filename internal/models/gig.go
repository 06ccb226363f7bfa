package models

import (
	"time"

	"gorm.io/datatypes"
)

type Gig struct {
	BaseModel
	Title             string          `gorm:"not null" json:"title"`
	Description       string          `gorm:"not null" json:"description"`
	CategoryID        string          `gorm:"not null;index" json:"category_id"`
	PostedBy          string          `gorm:"not null;index" json:"posted_by"`
	BudgetMin         *float64        `json:"budget_min"`
	BudgetMax         *float64        `json:"budget_max"`
	BudgetType        BudgetType      `gorm:"type:varchar(10);not null" json:"budget_type"`
	Deadline          *time.Time      `json:"deadline"`
	DurationEstimate  string          `json:"duration_estimate"`
	DifficultyLevel   DifficultyLevel `gorm:"type:varchar(20);not null" json:"difficulty_level"`
	RequiredSkills    datatypes.JSON  `json:"required_skills"`
	RemoteAllowed     bool            `gorm:"default:true" json:"remote_allowed"`
	Location          string          `json:"location"`
	Tags              datatypes.JSON  `json:"tags"`
	IsUrgent          bool            `gorm:"default:false" json:"is_urgent"`
	Status            GigStatus       `gorm:"type:varchar(20);default:'open';index" json:"status"`
	ViewsCount        int             `gorm:"default:0" json:"views_count"`
	ApplicationsCount int             `gorm:"default:0" json:"applications_count"`

	// Relations
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Owner        *User         `gorm:"foreignKey:PostedBy" json:"owner,omitempty"`
	Applications []Application `gorm:"foreignKey:GigID;constraint:OnDelete:CASCADE" json:"-"`
}
