package dto

import "bitskill_backend/internal/models"

type CreateApplicationRequest struct {
	GigID            string   `json:"gigId" binding:"required" validate:"required"`
	CoverLetter      string   `json:"coverLetter" binding:"required" validate:"required,min=50,max=2000"`
	ProposedRate     *float64 `json:"proposedRate" validate:"omitempty,gte=0"`
	ProposedTimeline string   `json:"proposedTimeline" binding:"required" validate:"required,min=5,max=500"`
	PortfolioLinks   []string `json:"portfolioLinks"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required" validate:"required,is-application-status"`
}

// ApplicationResponse - отклик с данными подавшего, для владельца гига
type ApplicationResponse struct {
	models.Application
	ApplicantName    string `json:"applicant_name,omitempty"`
	ApplicantEmail   string `json:"applicant_email,omitempty"`
	ApplicantPicture string `json:"applicant_picture,omitempty"`
}

// MyApplicationResponse - отклик с данными гига, для самого подавшего
type MyApplicationResponse struct {
	models.Application
	GigTitle     string `json:"gig_title,omitempty"`
	GigStatus    string `json:"gig_status,omitempty"`
	GigOwnerName string `json:"gig_owner_name,omitempty"`
}
