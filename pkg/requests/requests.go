// pkg/requests/requests.go
package requests

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// RegisterRequest kullanıcı kayıt isteği gövdesi.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// Validate alan kurallarını uygular.
func (r RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// LoginRequest token isteği gövdesi.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate alan kurallarını uygular.
func (r LoginRequest) Validate() error {
	return validate.Struct(r)
}
