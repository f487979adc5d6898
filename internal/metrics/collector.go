package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dshills/maskfield/internal/engine"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "maskfield"

// Collector records field events and UI timings.
type Collector struct {
	events     *prometheus.CounterVec
	failures   *prometheus.CounterVec
	renderTime prometheus.Histogram
	inputTime  prometheus.Histogram
}

// uiBuckets covers sub-millisecond terminal work up to a slow frame.
var uiBuckets = []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1}

// New creates a Collector and registers its metrics with reg.
//
// Metrics registered:
//   - {namespace}_field_events_total{field, kind}
//   - {namespace}_field_validation_failures_total{field, code}
//   - {namespace}_ui_render_duration_seconds
//   - {namespace}_ui_input_duration_seconds
//
// Registering twice against the same registry returns a Collector that
// shares the metrics registered first.
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "field",
			Name: "events_total", Help: "Field events by field name and kind",
		}, []string{"field", "kind"}),

		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "field",
			Name: "validation_failures_total", Help: "Failed validations by field name and code",
		}, []string{"field", "code"}),

		renderTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "ui",
			Name: "render_duration_seconds", Help: "Time spent drawing one frame",
			Buckets: uiBuckets,
		}),

		inputTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "ui",
			Name: "input_duration_seconds", Help: "Time spent handling one input event",
			Buckets: uiBuckets,
		}),
	}

	var err error
	if c.events, err = register(reg, c.events); err != nil {
		return nil, err
	}
	if c.failures, err = register(reg, c.failures); err != nil {
		return nil, err
	}
	if c.renderTime, err = register(reg, c.renderTime); err != nil {
		return nil, err
	}
	if c.inputTime, err = register(reg, c.inputTime); err != nil {
		return nil, err
	}
	return c, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// Observe implements engine.Observer.
func (c *Collector) Observe(e engine.Event) {
	name := fieldLabel(e)
	c.events.WithLabelValues(name, e.Kind.String()).Inc()

	if e.Kind != engine.EventValidationFailed {
		return
	}
	code := "unknown"
	var ve *engine.ValidationError
	if errors.As(e.Err, &ve) {
		code = string(ve.Code)
	}
	c.failures.WithLabelValues(name, code).Inc()
}

// ObserveRender records the time spent drawing a frame.
func (c *Collector) ObserveRender(d time.Duration) {
	c.renderTime.Observe(d.Seconds())
}

// ObserveInput records the time spent handling an input event.
func (c *Collector) ObserveInput(d time.Duration) {
	c.inputTime.Observe(d.Seconds())
}

func fieldLabel(e engine.Event) string {
	if e.Field != "" {
		return e.Field
	}
	return e.FieldID.String()
}
