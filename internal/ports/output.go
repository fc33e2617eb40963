package ports

import (
	"context"
	"housemate-alexa/internal/domain/model"

	"github.com/cockroachdb/errors"
)

var (
	ErrUnauthorized       = errors.New("backend rejected the access token")
	ErrDeviceNotFound     = errors.New("backend device not found")
	ErrBackendUnreachable = errors.New("backend unreachable")
	ErrBadResponse        = errors.New("backend returned an unreadable response")
)

// BackendPort is the Housemate REST API as seen by one directive. Every call
// issues exactly one HTTP request.
type BackendPort interface {
	ListPowerDevices(ctx context.Context) ([]*model.Device, error)
	TurnOn(ctx context.Context, id string) error
	TurnOff(ctx context.Context, id string) error
}

// BackendFactory builds a BackendPort authenticated with a bearer token.
type BackendFactory interface {
	ForToken(token string) BackendPort
}

// Recorder receives one observation per handled directive.
type Recorder interface {
	ObserveDirective(version, namespace, name, outcome string, elapsedSeconds float64)
}
