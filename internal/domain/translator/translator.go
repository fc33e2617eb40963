package translator

import (
	"housemate-alexa/internal/domain/model"

	"github.com/amimof/huego"
)

type HueMetadata struct {
	Type             string
	ModelID          string
	ManufacturerName string
}

// Translator maps Housemate devices to Hue lights and Hue state updates back
// to backend actions.
type Translator interface {
	ToHue(device *model.Device) *huego.Light
	ToAction(update map[string]interface{}) (model.PowerAction, bool)
	GetMetadata() HueMetadata
}
