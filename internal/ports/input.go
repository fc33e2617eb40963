package ports

import (
	"context"
	"encoding/json"

	"github.com/amimof/huego"
)

// DirectivePort translates one raw Alexa directive into its response envelope.
type DirectivePort interface {
	Handle(ctx context.Context, raw json.RawMessage) (any, error)
}

// BridgePort serves the Hue REST subset used by the local bridge.
type BridgePort interface {
	GetLights(ctx context.Context) (map[string]*huego.Light, error)
	GetLight(ctx context.Context, id string) (*huego.Light, error)
	SetLightState(ctx context.Context, id string, state map[string]interface{}) error
}
