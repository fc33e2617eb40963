package housemate

import (
	"context"
	"encoding/json"
	"fmt"
	"housemate-alexa/internal/domain/model"
	"housemate-alexa/internal/ports"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 5 * time.Second

// Factory builds one Client per directive from the bearer token the directive
// carries. Tokens are never refreshed or stored.
type Factory struct {
	oauth     *oauth2.Config
	baseURL   string
	powerPath string
	timeout   time.Duration
	base      *http.Client
	log       *zap.SugaredLogger
}

func NewFactory(cfg model.BackendConfig, log *zap.SugaredLogger) *Factory {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Factory{
		oauth:     &oauth2.Config{ClientID: cfg.ClientID},
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		powerPath: "/" + strings.Trim(cfg.PowerPath, "/"),
		timeout:   timeout,
		base:      &http.Client{},
		log:       log.With("module", "housemate"),
	}
}

func (f *Factory) ForToken(token string) ports.BackendPort {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, f.base)
	return &Client{
		powerURL:   f.baseURL + f.powerPath,
		timeout:    f.timeout,
		httpClient: f.oauth.Client(ctx, &oauth2.Token{AccessToken: token, TokenType: "Bearer"}),
		log:        f.log,
	}
}

// Client talks to the power ability of a Housemate server.
type Client struct {
	powerURL   string
	timeout    time.Duration
	httpClient *http.Client
	log        *zap.SugaredLogger
}

type devicePage struct {
	Elements []*model.Device `json:"elements"`
}

func (c *Client) ListPowerDevices(ctx context.Context) ([]*model.Device, error) {
	var page devicePage
	if err := c.do(ctx, http.MethodGet, c.powerURL+"?limit=-1", false, &page); err != nil {
		return nil, err
	}
	if page.Elements == nil {
		return []*model.Device{}, nil
	}
	for i, d := range page.Elements {
		if d == nil || d.ID == "" {
			return nil, errors.Mark(errors.Newf("power device %d has no id", i), ports.ErrBadResponse)
		}
	}
	return page.Elements, nil
}

func (c *Client) TurnOn(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, c.deviceURL(id, "on"), true, nil)
}

func (c *Client) TurnOff(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, c.deviceURL(id, "off"), true, nil)
}

func (c *Client) deviceURL(id, action string) string {
	return fmt.Sprintf("%s/%s/%s", c.powerURL, url.PathEscape(id), action)
}

func (c *Client) do(ctx context.Context, method, target string, deviceScoped bool, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return errors.Wrapf(err, "build %s request", method)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "%s %s", method, target), ports.ErrBackendUnreachable)
	}
	defer resp.Body.Close()

	c.log.Debugw("Backend request", "method", method, "url", target, "status", resp.StatusCode, "elapsed", time.Since(start))

	if err := statusError(resp.StatusCode, deviceScoped); err != nil {
		return errors.Wrapf(err, "%s %s: status %d", method, target, resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Mark(errors.Wrapf(err, "decode %s %s", method, target), ports.ErrBadResponse)
	}
	return nil
}

// statusError maps an HTTP status to a backend sentinel. A 404 on the device
// collection means a wrong base URL or power path, not a missing device.
func statusError(code int, deviceScoped bool) error {
	switch {
	case code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ports.ErrUnauthorized
	case code == http.StatusNotFound && deviceScoped:
		return ports.ErrDeviceNotFound
	default:
		return ports.ErrBackendUnreachable
	}
}
