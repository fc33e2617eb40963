package service

import (
	"housemate-alexa/internal/domain/alexa"
	"housemate-alexa/internal/ports"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	ErrUnsupportedDirective = errors.New("unsupported directive")
	ErrInvalidDirective     = errors.New("invalid directive")
	ErrLightNotFound        = errors.New("light not found")
)

// failure describes how an error is reported back to Alexa.
type failure struct {
	outcome string
	v3      alexa.ErrorType
	v2      alexa.V2ErrorName
	message string // empty means use the error text
}

var (
	failUnsupported  = failure{"unsupported", alexa.ErrorInvalidDirective, alexa.V2ErrorUnsupportedOperation, ""}
	failInvalid      = failure{"invalid", alexa.ErrorInvalidDirective, alexa.V2ErrorUnexpectedInformationReceived, ""}
	failUnauthorized = failure{"unauthorized", alexa.ErrorInvalidAuthorizationCredential, alexa.V2ErrorInvalidAccessToken, "the access token was rejected"}
	failNotFound     = failure{"not_found", alexa.ErrorNoSuchEndpoint, alexa.V2ErrorNoSuchTarget, "the device does not exist"}
	failUnreachable  = failure{"unreachable", alexa.ErrorEndpointUnreachable, alexa.V2ErrorTargetOffline, "the device service is unreachable"}
	failInternal     = failure{"internal", alexa.ErrorInternal, alexa.V2ErrorDriverInternal, "internal error"}
)

func classify(err error) failure {
	switch {
	case errors.Is(err, ErrUnsupportedDirective):
		return failUnsupported
	case errors.Is(err, ErrInvalidDirective):
		return failInvalid
	case errors.Is(err, ports.ErrUnauthorized):
		return failUnauthorized
	case errors.Is(err, ports.ErrDeviceNotFound):
		return failNotFound
	case errors.Is(err, ports.ErrBackendUnreachable):
		return failUnreachable
	default:
		return failInternal
	}
}

func (f failure) text(err error) string {
	if f.message != "" {
		return f.message
	}
	return err.Error()
}

func invalid(err error) error {
	return errors.Mark(errors.Wrap(err, "invalid directive"), ErrInvalidDirective)
}

// faultingParameter names the first field that failed validation.
func faultingParameter(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field()
	}
	return ""
}
