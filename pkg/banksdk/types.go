package banksdk

import "time"

// RegisterRequest is the body of POST /v1/auth/register.
type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password"`
}

// LoginRequest is the body of POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// AccessToken is the HS512 bearer token.
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int `json:"expires_in"`
}

// UserResponse describes a user. It never contains credentials.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Locked      bool      `json:"locked"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCardRequest is the body of POST /v1/cards. When Number is empty the
// service generates a Luhn-valid number.
type CreateCardRequest struct {
	HolderName string `json:"holder_name"`
	Number     string `json:"number,omitempty"`
}

// CardResponse describes a card. MaskedNumber has the form "1234******5678".
type CardResponse struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner_id"`
	HolderName   string    `json:"holder_name"`
	MaskedNumber string    `json:"masked_number"`
	CreatedAt    time.Time `json:"created_at"`
}

// CardListResponse is returned by GET /v1/cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Tokens   string `json:"tokens"`
	Cards    string `json:"cards"`
}
