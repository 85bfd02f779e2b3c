package dto

// LoginRequest accepts a username or a client email as the identifier.
type LoginRequest struct {
	Login    string `json:"login"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterClientRequest is the public self-registration payload.
type RegisterClientRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Surname    string  `json:"surname"    validate:"required"`
	Patronymic *string `json:"patronymic" validate:"omitempty"`
	Phone      string  `json:"phone"      validate:"required,e164"`
	Email      string  `json:"email"      validate:"required,email"`
	Password   string  `json:"password"   validate:"required,min=6"`
}

// RegisterEmployeeRequest creates a staff account; admin-only endpoint.
type RegisterEmployeeRequest struct {
	Name       string  `json:"name"       validate:"required"`
	Surname    string  `json:"surname"    validate:"required"`
	Patronymic *string `json:"patronymic" validate:"omitempty"`
	Phone      string  `json:"phone"      validate:"required,e164"`
	Username   string  `json:"username"   validate:"required,min=3"`
	Password   string  `json:"password"   validate:"required,min=6"`
	Role       string  `json:"role"       validate:"required,oneof=MANAGER PIZZAMAKER CASHIER"`
}

// UserResponse is the sanitized user record; the password hash never leaves
// the service layer.
type UserResponse struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Role       string  `json:"role"`
	EmployeeID *string `json:"employee_id,omitempty"`
	ClientID   *string `json:"client_id,omitempty"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type SessionResponse struct {
	Valid bool         `json:"valid"`
	User  UserResponse `json:"user"`
}
