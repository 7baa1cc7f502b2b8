package mapping

import (
	"fmt"

	"github.com/gf-b1-bridge/go/internal/config"
	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/models"
)

// ValidationResult reports required-field validation. Reason is set only when
// Valid is false and names the offending target key.
type ValidationResult struct {
	Valid  bool
	Reason string
}

// ValidateRequiredFields checks that CardName and EmailAddress are both
// mapped and resolve to non-empty entry values. It runs before any network
// call; the four failure modes are reported distinctly.
func ValidateRequiredFields(settings *config.FeedSettings, entry models.Entry, form models.Form) ValidationResult {
	for _, target := range []string{constants.TargetCardName, constants.TargetEmailAddress} {
		fieldID, mapped := settings.FieldMapping[target]
		if !mapped || fieldID == "" {
			return ValidationResult{Reason: fmt.Sprintf("required field %s is not mapped to a form field", target)}
		}
		if SanitizeScalar(entry.Get(fieldID)) == "" {
			return ValidationResult{Reason: fmt.Sprintf("required field %s resolved to an empty value (form field %s)", target, fieldID)}
		}
	}
	return ValidationResult{Valid: true}
}
