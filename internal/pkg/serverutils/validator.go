// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"devagency-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and folds all failures into a
// single ValidationError message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errs, ok := err.(validator.ValidationErrors); ok {
			verrs = errs
		} else {
			return apperror.Validation("invalid request payload")
		}

		parts := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			parts = append(parts, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
		}
		return apperror.Validation("validation failed: %s", strings.Join(parts, ", "))
	}
	return nil
}
