package dto

// SignupRequest represents the signup form payload
type SignupRequest struct {
	Username string
	Email    string
	Password string
}

// Valid reports whether every required field is present
func (r SignupRequest) Valid() bool {
	return r.Username != "" && r.Email != "" && r.Password != ""
}

// LoginRequest represents the login form payload
type LoginRequest struct {
	Username string
	Password string
}

// Valid reports whether every required field is present
func (r LoginRequest) Valid() bool {
	return r.Username != "" && r.Password != ""
}
