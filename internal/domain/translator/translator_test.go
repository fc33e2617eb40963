package translator

import (
	"housemate-alexa/internal/domain/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerStrategy_ToHue(t *testing.T) {
	s := NewPowerStrategy()
	light := s.ToHue(&model.Device{ID: "812576b6", Name: "Lamp", Description: "Living room"})

	assert.Equal(t, "Lamp", light.Name)
	assert.Equal(t, "812576b6", light.UniqueID)
	assert.Equal(t, "On/Off plug-in unit", light.Type)
	assert.Equal(t, "Intuso", light.ManufacturerName)
	assert.False(t, light.State.On)
	assert.True(t, light.State.Reachable)
}

func TestPowerStrategy_ToAction(t *testing.T) {
	s := NewPowerStrategy()

	action, ok := s.ToAction(map[string]interface{}{"on": true, "bri": float64(254)})
	assert.True(t, ok)
	assert.Equal(t, model.PowerOn, action)

	action, ok = s.ToAction(map[string]interface{}{"on": false})
	assert.True(t, ok)
	assert.Equal(t, model.PowerOff, action)

	// Brightness only
	_, ok = s.ToAction(map[string]interface{}{"bri": float64(10)})
	assert.False(t, ok)

	_, ok = s.ToAction(map[string]interface{}{"on": "yes"})
	assert.False(t, ok)
}

func TestMetadata(t *testing.T) {
	var tr Translator = NewPowerStrategy()
	assert.Equal(t, "LOM001", tr.GetMetadata().ModelID)
}
