package validator

import (
	"github.com/go-playground/validator/v10"
)

// echoのValidatorに差し込むための薄いラッパー
type EchoValidator struct {
	v *validator.Validate
}

func New() *EchoValidator {
	return &EchoValidator{v: validator.New()}
}

func (ev *EchoValidator) Validate(i interface{}) error {
	return ev.v.Struct(i)
}
