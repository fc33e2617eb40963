package service

import (
	"context"
	"housemate-alexa/internal/domain/model"
	"housemate-alexa/internal/domain/translator"
	"housemate-alexa/internal/ports"

	"github.com/amimof/huego"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// HueService backs the local bridge. Every call goes to the backend; light
// state is never cached.
type HueService struct {
	backend    ports.BackendPort
	translator translator.Translator
	log        *zap.SugaredLogger
}

func NewHueService(backend ports.BackendPort, log *zap.SugaredLogger) *HueService {
	return &HueService{
		backend:    backend,
		translator: translator.NewPowerStrategy(),
		log:        log.With("module", "hue"),
	}
}

func (s *HueService) GetLights(ctx context.Context) (map[string]*huego.Light, error) {
	devices, err := s.backend.ListPowerDevices(ctx)
	if err != nil {
		return nil, err
	}
	lights := make(map[string]*huego.Light, len(devices))
	for _, d := range devices {
		lights[d.ID] = s.translator.ToHue(d)
	}
	return lights, nil
}

func (s *HueService) GetLight(ctx context.Context, id string) (*huego.Light, error) {
	lights, err := s.GetLights(ctx)
	if err != nil {
		return nil, err
	}
	l, ok := lights[id]
	if !ok {
		return nil, errors.Wrapf(ErrLightNotFound, "light %s", id)
	}
	return l, nil
}

func (s *HueService) SetLightState(ctx context.Context, id string, state map[string]interface{}) error {
	action, ok := s.translator.ToAction(state)
	if !ok {
		s.log.Debugw("Ignoring state update without on/off", "light", id)
		return nil
	}
	s.log.Infow("Setting power", "light", id, "action", action)
	if action == model.PowerOn {
		return s.backend.TurnOn(ctx, id)
	}
	return s.backend.TurnOff(ctx, id)
}
