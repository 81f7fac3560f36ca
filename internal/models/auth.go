package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`

	// example: 30
	Age *int `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`

	// example: male
	Gender *string `json:"gender,omitempty"`

	// Height in centimeters
	// example: 180
	Height *float64 `json:"height,omitempty" validate:"omitempty,gte=0"`

	// Weight in kilograms
	// example: 80
	Weight *float64 `json:"weight,omitempty" validate:"omitempty,gte=0"`

	// example: sedentary
	ActivityLevel *string `json:"activity_level,omitempty"`

	// example: maintain
	Goal *string `json:"goal,omitempty"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by register and login
// swagger:model TokenResponse
type TokenResponse struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// example: bearer
	TokenType string `json:"token_type"`
}
