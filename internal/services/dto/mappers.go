package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"bitskill_backend/internal/models"
)

// JSONToStrings разворачивает JSON-колонку в срез строк.
// Битое или пустое значение дает пустой срез, не ошибку.
func JSONToStrings(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	return out
}

// StringsToJSON сериализует срез строк для JSON-колонки.
// nil превращается в пустой массив, чтобы в базе не было NULL.
func StringsToJSON(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           string(user.Role),
		ProfilePicture: user.ProfilePicture,
		Bio:            user.Bio,
		Skills:         JSONToStrings(user.Skills),
		Location:       user.Location,
		Website:        user.Website,
		Phone:          user.Phone,
		IsVerified:     user.IsVerified,
		CreatedAt:      user.CreatedAt,
	}
}

func NewGigResponse(gig *models.Gig) *GigResponse {
	resp := &GigResponse{Gig: *gig}
	if gig.Owner != nil {
		resp.PostedByName = gig.Owner.FullName
		resp.PostedByPicture = gig.Owner.ProfilePicture
		resp.PostedByBio = gig.Owner.Bio
	}
	if gig.Category != nil {
		resp.CategoryName = gig.Category.Name
		resp.CategoryColor = gig.Category.Color
	}
	// Подгруженные связи уже денормализованы в плоские поля
	resp.Gig.Owner = nil
	resp.Gig.Category = nil
	return resp
}

func NewGigResponses(gigs []models.Gig) []GigResponse {
	out := make([]GigResponse, 0, len(gigs))
	for i := range gigs {
		out = append(out, *NewGigResponse(&gigs[i]))
	}
	return out
}

func NewApplicationResponse(app *models.Application) *ApplicationResponse {
	resp := &ApplicationResponse{Application: *app}
	if app.Applicant != nil {
		resp.ApplicantName = app.Applicant.FullName
		resp.ApplicantEmail = app.Applicant.Email
		resp.ApplicantPicture = app.Applicant.ProfilePicture
	}
	resp.Application.Applicant = nil
	resp.Application.Gig = nil
	return resp
}

func NewMyApplicationResponse(app *models.Application) *MyApplicationResponse {
	resp := &MyApplicationResponse{Application: *app}
	if app.Gig != nil {
		resp.GigTitle = app.Gig.Title
		resp.GigStatus = string(app.Gig.Status)
		if app.Gig.Owner != nil {
			resp.GigOwnerName = app.Gig.Owner.FullName
		}
	}
	resp.Application.Applicant = nil
	resp.Application.Gig = nil
	return resp
}
