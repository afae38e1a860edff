package exceptions

import (
	"hospicare-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

// tagPriority fixes the reporting order of violations: missing fields are
// reported before length violations, lengths before formats, formats before
// digit-count rules. Unlisted tags come last.
var tagPriority = []string{"required", "min", "email", "oneof", "numeric", "len"}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	firstErr := validationErrors[0]
	for _, tag := range tagPriority {
		found := false
		for _, fieldErr := range validationErrors {
			if fieldErr.Tag() == tag {
				firstErr = fieldErr
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(firstErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
