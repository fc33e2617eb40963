package alexa

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// ErrMalformedDirective is returned when the event is neither a v2 nor a v3
// directive, so no version-specific error envelope can be built.
var ErrMalformedDirective = errors.New("malformed directive")

// Directive is the version-independent view of an inbound directive.
type Directive struct {
	Version          Version `validate:"oneof=2 3"`
	Namespace        string  `validate:"required"`
	Name             string  `validate:"required"`
	MessageID        string  `validate:"required"`
	PayloadVersion   string
	Token            string
	EndpointID       string
	CorrelationToken string
}

// Scope is the bearer token scope carried by v3 directives and echoed in responses.
type Scope struct {
	Type  string `json:"type"`
	Token string `json:"token"`
}

type event struct {
	Directive *v3Directive    `json:"directive"`
	Header    *v2Header       `json:"header"`
	Payload   json.RawMessage `json:"payload"`
}

type v2Header struct {
	Namespace      string `json:"namespace"`
	Name           string `json:"name"`
	PayloadVersion string `json:"payloadVersion"`
	MessageID      string `json:"messageId"`
}

type v2Payload struct {
	AccessToken string `json:"accessToken"`
	Appliance   *struct {
		ApplianceID string `json:"applianceId"`
	} `json:"appliance"`
}

type v3Directive struct {
	Header struct {
		Namespace        string `json:"namespace"`
		Name             string `json:"name"`
		PayloadVersion   string `json:"payloadVersion"`
		MessageID        string `json:"messageId"`
		CorrelationToken string `json:"correlationToken"`
	} `json:"header"`
	Endpoint *struct {
		Scope      *Scope `json:"scope"`
		EndpointID string `json:"endpointId"`
	} `json:"endpoint"`
	Payload *struct {
		Scope *Scope `json:"scope"`
	} `json:"payload"`
}

// Decode detects the directive version from the envelope shape: a "directive"
// key is v3, a top-level "header" key is v2.
func Decode(raw []byte) (*Directive, error) {
	var evt event
	if err := json.Unmarshal(raw, &evt); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decode directive"), ErrMalformedDirective)
	}

	switch {
	case evt.Directive != nil:
		return fromV3(evt.Directive), nil
	case evt.Header != nil:
		var p v2Payload
		if len(evt.Payload) > 0 {
			if err := json.Unmarshal(evt.Payload, &p); err != nil {
				return nil, errors.Mark(errors.Wrap(err, "decode v2 payload"), ErrMalformedDirective)
			}
		}
		return fromV2(evt.Header, &p), nil
	default:
		return nil, errors.Wrap(ErrMalformedDirective, "neither directive nor header present")
	}
}

func fromV2(h *v2Header, p *v2Payload) *Directive {
	d := &Directive{
		Version:        V2,
		Namespace:      h.Namespace,
		Name:           h.Name,
		MessageID:      h.MessageID,
		PayloadVersion: h.PayloadVersion,
		Token:          p.AccessToken,
	}
	if p.Appliance != nil {
		d.EndpointID = p.Appliance.ApplianceID
	}
	return d
}

func fromV3(v *v3Directive) *Directive {
	d := &Directive{
		Version:          V3,
		Namespace:        v.Header.Namespace,
		Name:             v.Header.Name,
		MessageID:        v.Header.MessageID,
		PayloadVersion:   v.Header.PayloadVersion,
		CorrelationToken: v.Header.CorrelationToken,
	}
	if v.Endpoint != nil {
		d.EndpointID = v.Endpoint.EndpointID
		if v.Endpoint.Scope != nil {
			d.Token = v.Endpoint.Scope.Token
		}
	}
	// Discover carries its scope in the payload instead of an endpoint.
	if d.Token == "" && v.Payload != nil && v.Payload.Scope != nil {
		d.Token = v.Payload.Scope.Token
	}
	return d
}
