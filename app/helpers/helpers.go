package helpers

import (
	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeyCartID contextKey = "cartID"
)

var Validate = validator.New(validator.WithRequiredStructEnabled())
