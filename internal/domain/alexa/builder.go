package alexa

import (
	"housemate-alexa/internal/domain/model"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Builder assembles response envelopes. Every envelope gets a fresh messageId.
type Builder struct {
	newID func() string
	now   func() time.Time
}

func NewBuilder() *Builder {
	return &Builder{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// WithClock returns a copy of the builder that samples time from now.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	c := *b
	c.now = now
	return &c
}

func (b *Builder) v2Header(namespace, name string) V2Header {
	return V2Header{
		Namespace:      namespace,
		Name:           name,
		PayloadVersion: string(V2),
		MessageID:      b.newID(),
	}
}

func (b *Builder) v3Header(namespace, name, correlationToken string) V3Header {
	return V3Header{
		Namespace:        namespace,
		Name:             name,
		PayloadVersion:   string(V3),
		MessageID:        b.newID(),
		CorrelationToken: correlationToken,
	}
}

func (b *Builder) V2Discovery(devices []*model.Device) *V2Response {
	appliances := make([]V2Appliance, 0, len(devices))
	for _, d := range devices {
		appliances = append(appliances, V2Appliance{
			Actions:                    []string{"turnOn", "turnOff"},
			AdditionalApplianceDetails: map[string]string{},
			ApplianceID:                asciiOnly(d.ID),
			FriendlyDescription:        asciiOnly(d.Description),
			FriendlyName:               asciiOnly(d.Name),
			IsReachable:                true,
			ManufacturerName:           ManufacturerName,
			ModelName:                  ModelName,
			Version:                    ApplianceVersion,
		})
	}
	return &V2Response{
		Header:  b.v2Header(NamespaceV2Discovery, NameDiscoverAppliancesResponse),
		Payload: V2DiscoveryPayload{DiscoveredAppliances: appliances},
	}
}

func (b *Builder) V2Control(action model.PowerAction) *V2Response {
	name := NameTurnOffConfirmation
	if action == model.PowerOn {
		name = NameTurnOnConfirmation
	}
	return &V2Response{
		Header:  b.v2Header(NamespaceV2Control, name),
		Payload: EmptyPayload{},
	}
}

// V2Error answers in the namespace of the failed request. faultingParameter is
// only meaningful for UnexpectedInformationReceivedError.
func (b *Builder) V2Error(namespace string, name V2ErrorName, faultingParameter string) *V2Response {
	if namespace == "" {
		namespace = NamespaceV2Control
	}
	return &V2Response{
		Header:  b.v2Header(namespace, string(name)),
		Payload: V2ErrorPayload{FaultingParameter: faultingParameter},
	}
}

func (b *Builder) V3Discovery(devices []*model.Device) *V3Response {
	endpoints := make([]V3DiscoveryEndpoint, 0, len(devices))
	for _, d := range devices {
		endpoints = append(endpoints, V3DiscoveryEndpoint{
			EndpointID:        d.ID,
			ManufacturerName:  ManufacturerName,
			FriendlyName:      d.Name,
			Description:       d.Description,
			DisplayCategories: []string{DisplayCategory},
			Capabilities: []V3Capability{
				interfaceCapability(NamespaceEndpointHealth, PropertyConnectivity),
				interfaceCapability(NamespacePowerController, PropertyPowerState),
			},
		})
	}
	return &V3Response{
		Event: V3Event{
			Header:  b.v3Header(NamespaceDiscovery, NameDiscoverResponse, ""),
			Payload: V3DiscoveryPayload{Endpoints: endpoints},
		},
	}
}

func interfaceCapability(iface, property string) V3Capability {
	return V3Capability{
		Type:      CapabilityTypeInterface,
		Interface: iface,
		Version:   InterfaceVersion,
		Properties: &V3CapabilityProperties{
			Supported:           []V3SupportedProperty{{Name: property}},
			ProactivelyReported: false,
			Retrievable:         false,
		},
	}
}

// V3Control confirms a power change. The reported state is the one requested,
// not a read-back from the backend.
func (b *Builder) V3Control(d *Directive, action model.PowerAction) *V3Response {
	return &V3Response{
		Context: &V3Context{
			Properties: []V3Property{{
				Namespace:                 NamespacePowerController,
				Name:                      PropertyPowerState,
				Value:                     action.State(),
				TimeOfSample:              b.now().UTC().Truncate(time.Second).Format(time.RFC3339),
				UncertaintyInMilliseconds: UncertaintyInMilliseconds,
			}},
		},
		Event: V3Event{
			Header:   b.v3Header(NamespaceAlexa, NameResponse, d.CorrelationToken),
			Endpoint: echoEndpoint(d),
			Payload:  EmptyPayload{},
		},
	}
}

func (b *Builder) V3AcceptGrant() *V3Response {
	return &V3Response{
		Event: V3Event{
			Header:  b.v3Header(NamespaceAuthorization, NameAcceptGrantResponse, ""),
			Payload: EmptyPayload{},
		},
	}
}

func (b *Builder) V3Error(d *Directive, typ ErrorType, message string) *V3Response {
	return &V3Response{
		Event: V3Event{
			Header:   b.v3Header(NamespaceAlexa, NameErrorResponse, d.CorrelationToken),
			Endpoint: echoEndpoint(d),
			Payload:  V3ErrorPayload{Type: typ, Message: message},
		},
	}
}

func echoEndpoint(d *Directive) *V3Endpoint {
	if d.EndpointID == "" {
		return nil
	}
	ep := &V3Endpoint{EndpointID: d.EndpointID}
	if d.Token != "" {
		ep.Scope = &Scope{Type: ScopeBearerToken, Token: d.Token}
	}
	return ep
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}
