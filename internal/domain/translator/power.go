package translator

import (
	"housemate-alexa/internal/domain/model"

	"github.com/amimof/huego"
)

type PowerStrategy struct{}

func NewPowerStrategy() *PowerStrategy {
	return &PowerStrategy{}
}

// ToHue reports the device as off and reachable: the backend exposes no
// state read and nothing is cached here.
func (s *PowerStrategy) ToHue(device *model.Device) *huego.Light {
	meta := s.GetMetadata()
	return &huego.Light{
		Name:             device.Name,
		Type:             meta.Type,
		ModelID:          meta.ModelID,
		ManufacturerName: meta.ManufacturerName,
		UniqueID:         device.ID,
		State: &huego.State{
			On:        false,
			Reachable: true,
		},
	}
}

// ToAction reads the "on" field of a Hue state update. Updates without it
// (brightness, colour) carry nothing a power device can act on.
func (s *PowerStrategy) ToAction(update map[string]interface{}) (model.PowerAction, bool) {
	on, ok := update["on"].(bool)
	if !ok {
		return "", false
	}
	if on {
		return model.PowerOn, true
	}
	return model.PowerOff, true
}

func (s *PowerStrategy) GetMetadata() HueMetadata {
	return HueMetadata{
		Type:             "On/Off plug-in unit",
		ModelID:          "LOM001",
		ManufacturerName: "Intuso",
	}
}
