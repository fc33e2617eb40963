package lambda

import (
	"context"
	"encoding/json"
	"housemate-alexa/internal/domain/alexa"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockDirectives struct {
	mock.Mock
}

func (m *MockDirectives) Handle(ctx context.Context, raw json.RawMessage) (any, error) {
	args := m.Called(ctx, raw)
	return args.Get(0), args.Error(1)
}

func TestHandler_Invoke(t *testing.T) {
	directives := new(MockDirectives)
	event := json.RawMessage(`{"directive":{}}`)
	directives.On("Handle", mock.Anything, event).Return("envelope", nil)

	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "req-1"})
	resp, err := NewHandler(directives, zap.NewNop().Sugar()).Invoke(ctx, event)

	assert.NoError(t, err)
	assert.Equal(t, "envelope", resp)
}

func TestHandler_Malformed(t *testing.T) {
	directives := new(MockDirectives)
	directives.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.Wrap(alexa.ErrMalformedDirective, "neither directive nor header present"))

	resp, err := NewHandler(directives, zap.NewNop().Sugar()).Invoke(context.Background(), json.RawMessage(`{}`))

	assert.Nil(t, resp)
	var malformed *MalformedDirectiveError
	assert.True(t, errors.As(err, &malformed))
	assert.True(t, errors.Is(err, alexa.ErrMalformedDirective))
}

func TestHandler_OtherError(t *testing.T) {
	directives := new(MockDirectives)
	boom := errors.New("boom")
	directives.On("Handle", mock.Anything, mock.Anything).Return(nil, boom)

	_, err := NewHandler(directives, zap.NewNop().Sugar()).Invoke(context.Background(), json.RawMessage(`{}`))

	var malformed *MalformedDirectiveError
	assert.False(t, errors.As(err, &malformed))
	assert.Equal(t, boom, err)
}
