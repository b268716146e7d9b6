package http

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/aussiebroadwan/cardbank/pkg/banksdk"
	"github.com/aussiebroadwan/cardbank/pkg/cryptox"
)

type validationErrors = validation.Errors

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var notBlank = validation.By(func(value any) error {
	s, _ := value.(string)
	if s != "" && strings.TrimSpace(s) == "" {
		return validation.NewError("validation_not_blank", "must not be blank")
	}
	return nil
})

var cardNumber = validation.By(func(value any) error {
	s, _ := value.(string)
	if s != "" && !cryptox.IsCardNumber(s) {
		return validation.NewError("validation_card_number", "must be exactly 16 digits")
	}
	return nil
})

type registerRequest banksdk.RegisterRequest

func (r *registerRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			validation.Length(5, 255),
			validation.Match(emailRegex).Error("must be a valid email address"),
		),
		validation.Field(&r.DisplayName,
			validation.Required.Error("display name is required"),
			notBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128),
		),
	)
}

type loginRequest banksdk.LoginRequest

func (r *loginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password, validation.Required, validation.Length(1, 128)),
	)
}

type createCardRequest banksdk.CreateCardRequest

func (r *createCardRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.HolderName,
			validation.Required.Error("holder name is required"),
			notBlank,
			validation.Length(1, 100),
		),
		validation.Field(&r.Number, cardNumber),
	)
}
