// Package errs defines the error taxonomy shared by the bridge: local
// validation failures, authentication failures, Service-Layer-reported
// failures, and transport-level failures. Callers classify with errors.As.
package errs

import "fmt"

// ValidationError reports a required mapped field that is missing from the
// mapping configuration or resolves to an empty entry value. It is raised
// before any network call.
type ValidationError struct {
	Target string // mapping target key, e.g. "CardName"
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Target, e.Reason)
}

// AuthenticationError reports a failed Service Layer login: unreachable
// endpoint, non-200 status, or a 200 body without a session id.
type AuthenticationError struct {
	Message string
	Err     error // underlying transport error, if any
}

func (e *AuthenticationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// SAPAPIError reports a non-2xx response from a data operation. Message
// carries SAP's own error text when the envelope was parseable.
type SAPAPIError struct {
	StatusCode int
	Message    string
}

func (e *SAPAPIError) Error() string {
	return fmt.Sprintf("Service Layer error (HTTP %d): %s", e.StatusCode, e.Message)
}

// NoLineItemsError reports a quotation attempt where zero candidate lines
// had a non-empty trigger value in the entry.
type NoLineItemsError struct{}

func (e *NoLineItemsError) Error() string {
	return "sales quotation has no line items: no mapped trigger field was set in the entry"
}

// NetworkError reports a transport-level failure (DNS, TLS, timeout) before
// any HTTP status was received.
type NetworkError struct {
	Op  string // method + URL of the attempted request
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
