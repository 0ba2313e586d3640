package pkg

import "fmt"

// ErrorKind classifies a PaymentError so callers can branch without
// string-matching messages.
type ErrorKind string

const (
	// KindValidation marks a request that failed structural checks before
	// any gateway call was made.
	KindValidation ErrorKind = "validation"
	// KindNotSupported marks an operation the selected gateway does not
	// implement.
	KindNotSupported ErrorKind = "not_supported"
	// KindTransport marks network, protocol or otherwise unexpected
	// failures coming out of a gateway call.
	KindTransport ErrorKind = "transport"
	// KindConfiguration marks missing/invalid credentials detected at
	// gateway construction time.
	KindConfiguration ErrorKind = "configuration"
)

// Generic error codes used when the provider did not supply one.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNotSupported       = "NOT_SUPPORTED"
	CodeUnexpectedError    = "UNEXPECTED_ERROR"
	CodeConfigurationError = "CONFIGURATION_ERROR"
)

// PaymentError is the single error type surfaced by the payment processor
// and the gateways. Code carries the provider-native error code when one is
// available; otherwise one of the generic codes above.
type PaymentError struct {
	Kind    ErrorKind
	Code    string
	Message string
	Err     error
}

func (e *PaymentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func (e *PaymentError) Unwrap() error { return e.Err }

// NewValidationError reports a request that failed validation.
func NewValidationError(message string) *PaymentError {
	return &PaymentError{Kind: KindValidation, Code: CodeInvalidRequest, Message: message}
}

// NewNotSupportedError reports a capability gap: the operation exists on the
// gateway interface but the selected provider does not implement it.
func NewNotSupportedError(operation, provider string) *PaymentError {
	return &PaymentError{
		Kind:    KindNotSupported,
		Code:    CodeNotSupported,
		Message: fmt.Sprintf("%s is not supported by the %s gateway", operation, provider),
	}
}

// NewTransportError wraps an unexpected or provider-reported failure. Pass
// the provider's own code when it supplied one.
func NewTransportError(message, code string, err error) *PaymentError {
	if code == "" {
		code = CodeUnexpectedError
	}
	return &PaymentError{Kind: KindTransport, Code: code, Message: message, Err: err}
}

// NewConfigurationError reports missing/invalid gateway credentials.
func NewConfigurationError(message string) *PaymentError {
	return &PaymentError{Kind: KindConfiguration, Code: CodeConfigurationError, Message: message}
}
