package dto

type UpdateProfileRequest struct {
	FullName string   `json:"fullName" validate:"omitempty,min=2,max=100"`
	Bio      string   `json:"bio" validate:"omitempty,max=2000"`
	Skills   []string `json:"skills"`
	Location string   `json:"location" validate:"omitempty,max=200"`
	Website  string   `json:"website" validate:"omitempty,url,max=500"`
	Phone    string   `json:"phone" validate:"omitempty,max=30"`
}
