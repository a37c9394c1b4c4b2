package dto

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required,min=8" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"user@example.com"`
	Password string `json:"password" validate:"required" example:"password123"`
}

type UserInfo struct {
	ID    string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email string `json:"email" example:"user@example.com"`
	Role  string `json:"role" example:"free" enums:"free,pro,elite"`
}

type RegisterResponse struct {
	Message string   `json:"message" example:"User registered successfully"`
	User    UserInfo `json:"user"`
}

type LoginResponse struct {
	Message string   `json:"message" example:"User logged in successfully"`
	Token   string   `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User    UserInfo `json:"user"`
}

type MeResponse struct {
	UserID string `json:"user_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email  string `json:"email" example:"user@example.com"`
	Role   string `json:"role" example:"free"`
}

// error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty"`
}
