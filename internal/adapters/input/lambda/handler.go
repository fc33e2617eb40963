package lambda

import (
	"context"
	"encoding/json"
	"housemate-alexa/internal/domain/alexa"
	"housemate-alexa/internal/ports"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// MalformedDirectiveError is what the Lambda runtime reports as errorType
// when an event carries neither a v2 nor a v3 directive.
type MalformedDirectiveError struct {
	cause error
}

func (e *MalformedDirectiveError) Error() string {
	return e.cause.Error()
}

func (e *MalformedDirectiveError) Unwrap() error {
	return e.cause
}

type Handler struct {
	directives ports.DirectivePort
	log        *zap.SugaredLogger
}

func NewHandler(directives ports.DirectivePort, log *zap.SugaredLogger) *Handler {
	return &Handler{directives: directives, log: log.With("module", "lambda")}
}

// Invoke is passed to lambda.Start.
func (h *Handler) Invoke(ctx context.Context, event json.RawMessage) (interface{}, error) {
	log := h.log
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.With("requestId", lc.AwsRequestID)
	}

	resp, err := h.directives.Handle(ctx, event)
	if err != nil {
		log.Errorw("Invocation failed", "error", err)
		if errors.Is(err, alexa.ErrMalformedDirective) {
			return nil, &MalformedDirectiveError{cause: err}
		}
		return nil, err
	}
	return resp, nil
}
