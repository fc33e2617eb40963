package http

import (
	"encoding/json"
	"fmt"
	"housemate-alexa/internal/domain/alexa"
	"housemate-alexa/internal/domain/service"
	"housemate-alexa/internal/ports"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const maxDirectiveBytes = 1 << 20

type Server struct {
	directives ports.DirectivePort
	bridge     ports.BridgePort
	gatherer   prometheus.Gatherer
	ip         string
	port       int
	log        *zap.SugaredLogger
}

type ServerOption func(s *Server)

func WithMetrics(gatherer prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.gatherer = gatherer
	}
}

// WithBridge mounts the Hue REST subset, advertising ip:port in description.xml.
func WithBridge(bridge ports.BridgePort, ip string, port int) ServerOption {
	return func(s *Server) {
		s.bridge = bridge
		s.ip = ip
		s.port = port
	}
}

func NewServer(directives ports.DirectivePort, log *zap.SugaredLogger, options ...ServerOption) *Server {
	s := &Server{
		directives: directives,
		log:        log.With("module", "http"),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/directive", s.handleDirective)
	r.Get("/healthz", s.handleHealth)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	if s.bridge != nil {
		r.Get("/description.xml", s.handleDescription)
		r.Post("/api", s.handleRegister)
		r.Get("/api/{user}", s.handleFullState)
		r.Get("/api/{user}/lights", s.handleGetLights)
		r.Get("/api/{user}/lights/{id}", s.handleGetLight)
		r.Put("/api/{user}/lights/{id}/state", s.handleSetLightState)
	}
	return r
}

func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func (s *Server) handleDirective(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDirectiveBytes))
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err)
		return
	}

	resp, err := s.directives.Handle(r.Context(), body)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, alexa.ErrMalformedDirective) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

func (s *Server) handleDescription(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/xml")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8" ?>
<root xmlns="urn:schemas-upnp-org:device-1-0">
<specVersion>
<major>1</major>
<minor>0</minor>
</specVersion>
<URLBase>http://%s:%d/</URLBase>
<device>
<deviceType>urn:schemas-upnp-org:device:Basic:1</deviceType>
<friendlyName>Philips hue (%s)</friendlyName>
<manufacturer>Royal Philips Electronics</manufacturer>
<manufacturerURL>http://www.philips.com</manufacturerURL>
<modelDescription>Philips hue Personal Wireless Lighting</modelDescription>
<modelName>Philips hue bridge 2012</modelName>
<modelNumber>929000226503</modelNumber>
<modelURL>http://www.meethue.com</modelURL>
<serialNumber>001788102201</serialNumber>
<UDN>uuid:2f402f80-da50-11e1-9b23-001788102201</UDN>
</device>
</root>`, s.ip, s.port, s.ip)
}

// Every pairing request gets the same username; the bridge has no users.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, []map[string]interface{}{
		{"success": map[string]string{"username": "housemate"}},
	})
}

func (s *Server) handleFullState(w http.ResponseWriter, r *http.Request) {
	lights, err := s.bridge.GetLights(r.Context())
	if err != nil {
		s.bridgeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"lights": lights,
		"groups": map[string]interface{}{},
		"config": map[string]interface{}{
			"name":       "Philips hue",
			"swversion":  "01003542",
			"apiversion": "1.11.0",
			"mac":        "00:17:88:10:22:01",
			"bridgeid":   "001788FFFE102201",
			"modelid":    "BSB001",
		},
	})
}

func (s *Server) handleGetLights(w http.ResponseWriter, r *http.Request) {
	lights, err := s.bridge.GetLights(r.Context())
	if err != nil {
		s.bridgeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lights)
}

func (s *Server) handleGetLight(w http.ResponseWriter, r *http.Request) {
	light, err := s.bridge.GetLight(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.bridgeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, light)
}

func (s *Server) handleSetLightState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var stateUpdate map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&stateUpdate); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.bridge.SetLightState(r.Context(), id, stateUpdate); err != nil {
		s.bridgeError(w, err)
		return
	}

	resp := []map[string]interface{}{}
	for k, v := range stateUpdate {
		resp = append(resp, map[string]interface{}{
			"success": map[string]interface{}{
				fmt.Sprintf("/lights/%s/state/%s", id, k): v,
			},
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) bridgeError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	switch {
	case errors.Is(err, service.ErrLightNotFound), errors.Is(err, ports.ErrDeviceNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ports.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	s.log.Warnw("Bridge request failed", "status", status, "error", err)
	writeError(w, status, err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
