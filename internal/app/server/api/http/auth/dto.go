package auth

import "time"

type RegisterInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Username string `json:"username" example:"alice" doc:"Unique login name, 3-50 characters of letters, digits, dot, underscore or hyphen"`
	Password string `json:"password" example:"S3cret!pass" doc:"At least 8 characters with upper, lower, digit and special character"`
}

type LoginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"S3cret!pass"`
}

type AuthOutput struct {
	Body AuthResponse
}

type AuthResponse struct {
	Token    string `json:"token" doc:"Bearer token for subsequent requests"`
	Username string `json:"username" example:"alice"`
	Message  string `json:"message" example:"Authentication successful"`
}

type ProfileOutput struct {
	Body ProfileResponse
}

type ProfileResponse struct {
	Username  string     `json:"username" example:"alice"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}
