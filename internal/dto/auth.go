package dto

// LoginRequest represents the demo login request body
// @Description Request body for demo login
type LoginRequest struct {
	StudentID *int64 `json:"student_id"`
	Password  string `json:"password"`
}

// LoginResponse represents the demo login result
type LoginResponse struct {
	Success   bool   `json:"success"`
	StudentID *int64 `json:"student_id"`
	Message   string `json:"message"`
}
