package authapp

import (
	"encoding/json"
	"fmt"

	"github.com/mrarunkumar300-ops/dharmahome/app/sdk/errs"
)

// Token carries a signed JWT back to the caller.
type Token struct {
	Token string `json:"token"`
}

// Encode implements the encoder interface.
func (t Token) Encode() ([]byte, string, error) {
	data, err := json.Marshal(t)
	return data, "application/json", err
}

// Landing carries the dashboard root for the caller's highest role.
type Landing struct {
	Path string `json:"path"`
	Role string `json:"role"`
}

// Encode implements the encoder interface.
func (l Landing) Encode() ([]byte, string, error) {
	data, err := json.Marshal(l)
	return data, "application/json", err
}

// Login defines the data needed to authenticate a user.
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Decode implements the decoder interface.
func (app *Login) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app Login) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}

// Bootstrap defines the data needed to seed the first super admin. The
// email/password pair must match the configured bootstrap secret.
type Bootstrap struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Decode implements the decoder interface.
func (app *Bootstrap) Decode(data []byte) error {
	return json.Unmarshal(data, app)
}

// Validate checks the data in the model is considered clean.
func (app Bootstrap) Validate() error {
	if err := errs.Check(app); err != nil {
		return errs.New(errs.InvalidArgument, fmt.Errorf("validate: %w", err))
	}
	return nil
}
