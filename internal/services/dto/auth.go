package dto

import "time"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	FullName string `json:"fullName" binding:"required" validate:"required,min=2,max=100"`
	Password string `json:"password" binding:"required" validate:"required,strong-password"`
	Role     string `json:"role" binding:"required" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required,min=1"`
}

type AuthResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
	Token   string        `json:"token"`
}

type UserResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullName"`
	Role           string    `json:"role"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Skills         []string  `json:"skills"`
	Location       string    `json:"location,omitempty"`
	Website        string    `json:"website,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	IsVerified     bool      `json:"isVerified"`
	CreatedAt      time.Time `json:"createdAt"`
}
