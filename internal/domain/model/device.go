package model

// Device is a power-capable Housemate device as returned by the backend.
type Device struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PowerAction string

const (
	PowerOn  PowerAction = "on"
	PowerOff PowerAction = "off"
)

// State is the value reported to Alexa for the powerState property.
func (a PowerAction) State() string {
	if a == PowerOn {
		return "ON"
	}
	return "OFF"
}
