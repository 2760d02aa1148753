package dtos

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// messages translates validator tags into user-facing text. All
// violations are collected; validation never stops at the first one.
func messages(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = err.Error()
		return out
	}
	for _, violation := range violations {
		out[violation.Field()] = messageFor(violation)
	}
	return out
}

func messageFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", violation.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", violation.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", violation.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", violation.Param())
	case "uuid":
		return "must be a valid id"
	default:
		return fmt.Sprintf("failed %s constraint", violation.Tag())
	}
}
