package service

import (
	"context"
	"encoding/json"
	"housemate-alexa/internal/domain/alexa"
	"housemate-alexa/internal/domain/model"
	"housemate-alexa/internal/ports"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const outcomeOK = "ok"

type handlerKey struct {
	version   alexa.Version
	namespace string
	name      string
}

type handlerFunc func(ctx context.Context, d *alexa.Directive) (any, error)

type discoveryTarget struct {
	Token string `validate:"required"`
}

type controlTarget struct {
	Token      string `validate:"required"`
	EndpointID string `validate:"required"`
}

// Router is the entry point for every directive. It keeps no state between
// calls; the backend client is built from each directive's token.
type Router struct {
	backends ports.BackendFactory
	builder  *alexa.Builder
	validate *validator.Validate
	recorder ports.Recorder
	log      *zap.SugaredLogger
	handlers map[handlerKey]handlerFunc
}

type RouterOption func(r *Router)

func WithRecorder(rec ports.Recorder) RouterOption {
	return func(r *Router) {
		r.recorder = rec
	}
}

func WithBuilder(b *alexa.Builder) RouterOption {
	return func(r *Router) {
		r.builder = b
	}
}

func NewRouter(backends ports.BackendFactory, log *zap.SugaredLogger, options ...RouterOption) *Router {
	r := &Router{
		backends: backends,
		builder:  alexa.NewBuilder(),
		validate: validator.New(),
		recorder: nopRecorder{},
		log:      log.With("module", "router"),
	}
	for _, option := range options {
		option(r)
	}

	r.handlers = map[handlerKey]handlerFunc{
		{alexa.V2, alexa.NamespaceV2Discovery, alexa.NameDiscoverAppliancesRequest}: r.v2Discovery,
		{alexa.V2, alexa.NamespaceV2Control, alexa.NameTurnOnRequest}:               r.v2Control(model.PowerOn),
		{alexa.V2, alexa.NamespaceV2Control, alexa.NameTurnOffRequest}:              r.v2Control(model.PowerOff),
		{alexa.V3, alexa.NamespaceDiscovery, alexa.NameDiscover}:                    r.v3Discovery,
		{alexa.V3, alexa.NamespacePowerController, alexa.NameTurnOn}:                r.v3Control(model.PowerOn),
		{alexa.V3, alexa.NamespacePowerController, alexa.NameTurnOff}:               r.v3Control(model.PowerOff),
		{alexa.V3, alexa.NamespaceAuthorization, alexa.NameAcceptGrant}:             r.v3AcceptGrant,
	}
	return r
}

// Handle decodes one directive and returns its response envelope. The error
// is non-nil only when the version cannot be determined (alexa.ErrMalformedDirective);
// every other failure is reported inside a version-specific error envelope.
func (r *Router) Handle(ctx context.Context, raw json.RawMessage) (any, error) {
	start := time.Now()

	d, err := alexa.Decode(raw)
	if err != nil {
		r.log.Warnw("Rejected malformed directive", "error", err)
		r.recorder.ObserveDirective("", "", "", "malformed", time.Since(start).Seconds())
		return nil, err
	}

	log := r.log.With(
		"version", d.Version,
		"namespace", d.Namespace,
		"name", d.Name,
		"messageId", d.MessageID,
	)
	log.Infow("Directive received", "endpoint", d.EndpointID)

	resp, err := r.dispatch(ctx, d)
	outcome := outcomeOK
	if err != nil {
		var f failure
		resp, f = r.failure(d, err)
		outcome = f.outcome
		log.Warnw("Directive failed", "outcome", outcome, "error", err)
	}

	log.Infow("Response sent", "response", responseName(resp), "outcome", outcome)
	r.recorder.ObserveDirective(string(d.Version), d.Namespace, d.Name, outcome, time.Since(start).Seconds())
	return resp, nil
}

func (r *Router) dispatch(ctx context.Context, d *alexa.Directive) (any, error) {
	if err := r.validate.Struct(d); err != nil {
		return nil, invalid(err)
	}

	h, ok := r.handlers[handlerKey{d.Version, d.Namespace, d.Name}]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedDirective, "%s.%s", d.Namespace, d.Name)
	}
	return h(ctx, d)
}

func (r *Router) failure(d *alexa.Directive, err error) (any, failure) {
	f := classify(err)
	if d.Version == alexa.V2 {
		return r.builder.V2Error(d.Namespace, f.v2, faultingParameter(err)), f
	}
	return r.builder.V3Error(d, f.v3, f.text(err)), f
}

func (r *Router) discover(ctx context.Context, d *alexa.Directive) ([]*model.Device, error) {
	if err := r.validate.Struct(discoveryTarget{Token: d.Token}); err != nil {
		return nil, invalid(err)
	}
	return r.backends.ForToken(d.Token).ListPowerDevices(ctx)
}

func (r *Router) power(ctx context.Context, d *alexa.Directive, action model.PowerAction) error {
	if err := r.validate.Struct(controlTarget{Token: d.Token, EndpointID: d.EndpointID}); err != nil {
		return invalid(err)
	}
	backend := r.backends.ForToken(d.Token)
	if action == model.PowerOn {
		return backend.TurnOn(ctx, d.EndpointID)
	}
	return backend.TurnOff(ctx, d.EndpointID)
}

func (r *Router) v2Discovery(ctx context.Context, d *alexa.Directive) (any, error) {
	devices, err := r.discover(ctx, d)
	if err != nil {
		return nil, err
	}
	return r.builder.V2Discovery(devices), nil
}

func (r *Router) v2Control(action model.PowerAction) handlerFunc {
	return func(ctx context.Context, d *alexa.Directive) (any, error) {
		if err := r.power(ctx, d, action); err != nil {
			return nil, err
		}
		return r.builder.V2Control(action), nil
	}
}

func (r *Router) v3Discovery(ctx context.Context, d *alexa.Directive) (any, error) {
	devices, err := r.discover(ctx, d)
	if err != nil {
		return nil, err
	}
	return r.builder.V3Discovery(devices), nil
}

func (r *Router) v3Control(action model.PowerAction) handlerFunc {
	return func(ctx context.Context, d *alexa.Directive) (any, error) {
		if err := r.power(ctx, d, action); err != nil {
			return nil, err
		}
		return r.builder.V3Control(d, action), nil
	}
}

// The grant code is not exchanged: tokens arrive with every directive.
func (r *Router) v3AcceptGrant(_ context.Context, _ *alexa.Directive) (any, error) {
	return r.builder.V3AcceptGrant(), nil
}

func responseName(resp any) string {
	switch r := resp.(type) {
	case *alexa.V2Response:
		return r.Header.Name
	case *alexa.V3Response:
		return r.Event.Header.Name
	}
	return ""
}

type nopRecorder struct{}

func (nopRecorder) ObserveDirective(string, string, string, string, float64) {}
