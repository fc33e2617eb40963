package http

import (
	"context"
	"encoding/json"
	"housemate-alexa/internal/domain/alexa"
	"housemate-alexa/internal/domain/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amimof/huego"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockDirectives struct {
	mock.Mock
}

func (m *MockDirectives) Handle(ctx context.Context, raw json.RawMessage) (any, error) {
	args := m.Called(ctx, raw)
	return args.Get(0), args.Error(1)
}

type MockBridge struct {
	mock.Mock
}

func (m *MockBridge) GetLights(ctx context.Context) (map[string]*huego.Light, error) {
	args := m.Called(ctx)
	lights, _ := args.Get(0).(map[string]*huego.Light)
	return lights, args.Error(1)
}

func (m *MockBridge) GetLight(ctx context.Context, id string) (*huego.Light, error) {
	args := m.Called(ctx, id)
	light, _ := args.Get(0).(*huego.Light)
	return light, args.Error(1)
}

func (m *MockBridge) SetLightState(ctx context.Context, id string, state map[string]interface{}) error {
	args := m.Called(ctx, id, state)
	return args.Error(0)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Directive(t *testing.T) {
	directives := new(MockDirectives)
	body := `{"directive":{"header":{"name":"AcceptGrant"}}}`
	directives.On("Handle", mock.Anything, json.RawMessage(body)).Return(map[string]string{"ok": "yes"}, nil)

	h := NewServer(directives, zap.NewNop().Sugar()).Handler()
	rec := do(t, h, http.MethodPost, "/directive", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"ok":"yes"}`, rec.Body.String())
}

func TestServer_MalformedDirective(t *testing.T) {
	directives := new(MockDirectives)
	directives.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.Wrap(alexa.ErrMalformedDirective, "neither directive nor header present"))

	h := NewServer(directives, zap.NewNop().Sugar()).Handler()
	rec := do(t, h, http.MethodPost, "/directive", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed directive")
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestServer_DirectiveBodyErrors(t *testing.T) {
	directives := new(MockDirectives)
	h := NewServer(directives, zap.NewNop().Sugar()).Handler()

	rec := do(t, h, http.MethodPost, "/directive", strings.Repeat("x", maxDirectiveBytes+1))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/directive", failingBody{})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	directives.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestServer_MetricsAndHealth(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	h := NewServer(new(MockDirectives), zap.NewNop().Sugar(), WithMetrics(reg)).Handler()

	rec := do(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "test_total 1")

	rec = do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, "ok", rec.Body.String())
}

func TestServer_BridgeDisabled(t *testing.T) {
	h := NewServer(new(MockDirectives), zap.NewNop().Sugar()).Handler()

	rec := do(t, h, http.MethodGet, "/api/housemate/lights", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_BridgeLights(t *testing.T) {
	bridge := new(MockBridge)
	lamp := &huego.Light{Name: "Lamp", UniqueID: "E1", State: &huego.State{Reachable: true}}
	bridge.On("GetLights", mock.Anything).Return(map[string]*huego.Light{"E1": lamp}, nil)
	bridge.On("GetLight", mock.Anything, "E1").Return(lamp, nil)
	bridge.On("GetLight", mock.Anything, "nope").Return(nil, errors.Wrap(service.ErrLightNotFound, "light nope"))

	h := NewServer(new(MockDirectives), zap.NewNop().Sugar(), WithBridge(bridge, "192.168.1.20", 8080)).Handler()

	rec := do(t, h, http.MethodGet, "/api/housemate/lights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var lights map[string]huego.Light
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lights))
	assert.Equal(t, "Lamp", lights["E1"].Name)

	rec = do(t, h, http.MethodGet, "/api/housemate/lights/E1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/housemate/lights/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/housemate", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bridgeid":"001788FFFE102201"`)

	rec = do(t, h, http.MethodGet, "/description.xml", "")
	assert.Contains(t, rec.Body.String(), "<URLBase>http://192.168.1.20:8080/</URLBase>")

	rec = do(t, h, http.MethodPost, "/api", `{"devicetype":"Echo"}`)
	assert.JSONEq(t, `[{"success":{"username":"housemate"}}]`, rec.Body.String())
}

func TestServer_BridgeSetState(t *testing.T) {
	bridge := new(MockBridge)
	bridge.On("SetLightState", mock.Anything, "E1", map[string]interface{}{"on": true}).Return(nil)

	h := NewServer(new(MockDirectives), zap.NewNop().Sugar(), WithBridge(bridge, "192.168.1.20", 80)).Handler()

	rec := do(t, h, http.MethodPut, "/api/housemate/lights/E1/state", `{"on": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"success":{"/lights/E1/state/on":true}}]`, rec.Body.String())
	bridge.AssertExpectations(t)

	rec = do(t, h, http.MethodPut, "/api/housemate/lights/E1/state", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
