package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	r.ObserveDirective("3", "Alexa.PowerController", "TurnOn", "ok", 0.02)
	r.ObserveDirective("3", "Alexa.PowerController", "TurnOn", "ok", 0.03)
	r.ObserveDirective("2", "Alexa.ConnectedHome.Control", "TurnOffRequest", "unauthorized", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.total.WithLabelValues("3", "Alexa.PowerController", "TurnOn", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.total.WithLabelValues("2", "Alexa.ConnectedHome.Control", "TurnOffRequest", "unauthorized")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.duration))
}

func TestPrometheusRecorder_DoubleRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusRecorder(reg)
	require.NoError(t, err)

	_, err = NewPrometheusRecorder(reg)
	assert.Error(t, err)
}
