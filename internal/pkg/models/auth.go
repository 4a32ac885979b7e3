package models

// LoginRequest is the payload for the login endpoint. Password may be empty
// for social-login style flows; an unknown email registers a new account.
type LoginRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Img      string `json:"img"`
}

// RegisterRequest is the payload for explicit registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Img      string `json:"img"`
}

// RefreshRequest is the payload for the refresh-token endpoint
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse carries issued session tokens
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	Role         string `json:"role,omitempty"`
	ExpiresAt    int64  `json:"expires_at"`
}
