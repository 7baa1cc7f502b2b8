// Package redact sanitizes log payloads before they reach the logger.
// Credential keys are blanked, username keys keep a two-character prefix,
// everything else passes through unchanged, recursively.
package redact

import (
	"strings"

	"github.com/gf-b1-bridge/go/internal/constants"
)

var passwordKeys = map[string]bool{
	"password":     true,
	"sap_password": true,
	"pass":         true,
	"pwd":          true,
}

var usernameKeys = map[string]bool{
	"username":     true,
	"sap_username": true,
	"user":         true,
	"login":        true,
}

// Sanitize returns a copy of data with sensitive values replaced. Nested maps
// and slices are walked recursively; the input is never mutated.
func Sanitize(data map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(data))
	for key, value := range data {
		lower := strings.ToLower(key)
		switch {
		case passwordKeys[lower]:
			result[key] = constants.RedactedValue
		case usernameKeys[lower]:
			result[key] = MaskIdentifier(stringify(value))
		default:
			result[key] = sanitizeValue(value)
		}
	}
	return result
}

// MaskIdentifier keeps the first two characters of an identifier and masks
// the rest. Identifiers of two characters or fewer are fully masked.
func MaskIdentifier(value string) string {
	if len(value) <= 2 {
		return constants.MaskSuffix
	}
	return value[:2] + constants.MaskSuffix
}

func sanitizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return Sanitize(v)
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = sanitizeValue(item)
		}
		return result
	default:
		return value
	}
}

func stringify(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}
