package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/quizdeck/quizdeck-api/internal/apperr"
)

func abortWithError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	ctx.Abort()
}

// bindingError turns a ShouldBindJSON failure into a 400 with a readable
// message instead of the decoder's raw output.
func bindingError(err error) *apperr.Error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.BadRequest(fmt.Sprintf("field %s must be of type %s", typeErr.Field, typeErr.Type))
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		messages := make([]string, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			switch fieldErr.ActualTag() {
			case "required":
				messages = append(messages, fmt.Sprintf("field %s is required", fieldErr.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("field %s must be a valid email address", fieldErr.Field()))
			default:
				messages = append(messages, fmt.Sprintf("field %s is invalid", fieldErr.Field()))
			}
		}
		return apperr.BadRequest(strings.Join(messages, ", "))
	}

	return apperr.BadRequest("Invalid request body")
}
