package alexa

// EmptyPayload marshals to {}.
type EmptyPayload struct{}

type V2Header struct {
	Namespace      string `json:"namespace"`
	Name           string `json:"name"`
	PayloadVersion string `json:"payloadVersion"`
	MessageID      string `json:"messageId"`
}

type V2Response struct {
	Header  V2Header `json:"header"`
	Payload any      `json:"payload"`
}

type V2DiscoveryPayload struct {
	DiscoveredAppliances []V2Appliance `json:"discoveredAppliances"`
}

type V2Appliance struct {
	Actions                    []string          `json:"actions"`
	AdditionalApplianceDetails map[string]string `json:"additionalApplianceDetails"`
	ApplianceID                string            `json:"applianceId"`
	FriendlyDescription        string            `json:"friendlyDescription"`
	FriendlyName               string            `json:"friendlyName"`
	IsReachable                bool              `json:"isReachable"`
	ManufacturerName           string            `json:"manufacturerName"`
	ModelName                  string            `json:"modelName"`
	Version                    string            `json:"version"`
}

type V2ErrorPayload struct {
	FaultingParameter string `json:"faultingParameter,omitempty"`
}

type V3Header struct {
	Namespace        string `json:"namespace"`
	Name             string `json:"name"`
	PayloadVersion   string `json:"payloadVersion"`
	MessageID        string `json:"messageId"`
	CorrelationToken string `json:"correlationToken,omitempty"`
}

type V3Endpoint struct {
	Scope      *Scope `json:"scope,omitempty"`
	EndpointID string `json:"endpointId"`
}

type V3Event struct {
	Header   V3Header    `json:"header"`
	Endpoint *V3Endpoint `json:"endpoint,omitempty"`
	Payload  any         `json:"payload"`
}

type V3Property struct {
	Namespace                 string `json:"namespace"`
	Name                      string `json:"name"`
	Value                     any    `json:"value"`
	TimeOfSample              string `json:"timeOfSample"`
	UncertaintyInMilliseconds int    `json:"uncertaintyInMilliseconds"`
}

type V3Context struct {
	Properties []V3Property `json:"properties"`
}

type V3Response struct {
	Context *V3Context `json:"context,omitempty"`
	Event   V3Event    `json:"event"`
}

type V3DiscoveryPayload struct {
	Endpoints []V3DiscoveryEndpoint `json:"endpoints"`
}

type V3DiscoveryEndpoint struct {
	EndpointID        string         `json:"endpointId"`
	ManufacturerName  string         `json:"manufacturerName"`
	FriendlyName      string         `json:"friendlyName"`
	Description       string         `json:"description"`
	DisplayCategories []string       `json:"displayCategories"`
	Capabilities      []V3Capability `json:"capabilities"`
}

type V3Capability struct {
	Type       string                  `json:"type"`
	Interface  string                  `json:"interface"`
	Version    string                  `json:"version"`
	Properties *V3CapabilityProperties `json:"properties,omitempty"`
}

type V3CapabilityProperties struct {
	Supported           []V3SupportedProperty `json:"supported"`
	ProactivelyReported bool                  `json:"proactivelyReported"`
	Retrievable         bool                  `json:"retrievable"`
}

type V3SupportedProperty struct {
	Name string `json:"name"`
}

type V3ErrorPayload struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
}
