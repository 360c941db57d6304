package payload

import (
	"taskboard/internal/core"

	"github.com/jellydator/validation"
)

const minPasswordLength = 6

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s SignupRequest) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Username, validation.Required),
		validation.Field(&s.Password, validation.Required, validation.Length(minPasswordLength, 0)),
	)
}

func (s SignupRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: s.Username,
		Password: s.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToCredentials() core.Credentials {
	return core.Credentials{
		Username: l.Username,
		Password: l.Password,
	}
}
