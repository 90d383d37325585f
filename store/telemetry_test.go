package store_test

import (
	"testing"

	"github.com/Ricky294/perdict"
	"github.com/Ricky294/perdict/driver/memorystore"
	. "github.com/Ricky294/perdict/store"
	nooplog "go.opentelemetry.io/otel/log/noop"
	noopmetric "go.opentelemetry.io/otel/metric/noop"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

func TestWithTelemetry(t *testing.T) {
	perdict.RunTests(
		t,
		func(t *testing.T) Store {
			return WithTelemetry(
				&memorystore.Store{},
				nooptrace.NewTracerProvider(),
				noopmetric.NewMeterProvider(),
				nooplog.NewLoggerProvider(),
			)
		},
	)
}
