package trace

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/reagentlab/tracker/pkg/middleware/logger"
)

type InitConfig struct {
	ServiceName    string
	Version        string
	Env            string
	TraceEndpoint  string
	MetricEndpoint string
	Stdout         bool
}

var (
	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
)

// InitTrace installs global trace and metric providers. With no endpoint and no stdout flag
// the otel no-op providers stay in place.
func InitTrace(ctx context.Context, conf *InitConfig) {
	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", conf.ServiceName),
		attribute.String("service.version", conf.Version),
		attribute.String("deployment.environment", conf.Env),
	))
	if err != nil {
		logger.Errorf(ctx, "init trace resource err: %+v", err)
		return
	}

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	if spanExp, err := newSpanExporter(ctx, conf); err != nil {
		logger.Errorf(ctx, "init span exporter err: %+v", err)
	} else if spanExp != nil {
		tracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(spanExp),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tracerProvider)
	}

	if metricExp, err := newMetricExporter(ctx, conf); err != nil {
		logger.Errorf(ctx, "init metric exporter err: %+v", err)
	} else if metricExp != nil {
		meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp, sdkmetric.WithInterval(30*time.Second))),
			sdkmetric.WithResource(res),
		)
		otel.SetMeterProvider(meterProvider)

		if err := host.Start(host.WithMeterProvider(meterProvider)); err != nil {
			logger.Errorf(ctx, "start host metrics err: %+v", err)
		}
		if err := runtime.Start(runtime.WithMeterProvider(meterProvider),
			runtime.WithMinimumReadMemStatsInterval(10*time.Second)); err != nil {
			logger.Errorf(ctx, "start runtime metrics err: %+v", err)
		}
	}
}

func newSpanExporter(ctx context.Context, conf *InitConfig) (sdktrace.SpanExporter, error) {
	switch {
	case conf.TraceEndpoint != "":
		return otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(conf.TraceEndpoint),
			otlptracegrpc.WithInsecure())
	case conf.Stdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	return nil, nil
}

func newMetricExporter(ctx context.Context, conf *InitConfig) (sdkmetric.Exporter, error) {
	switch {
	case conf.MetricEndpoint != "":
		return otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(conf.MetricEndpoint),
			otlpmetricgrpc.WithInsecure())
	case conf.Stdout:
		return stdoutmetric.New()
	}
	return nil, nil
}

func Tracer(name string) oteltrace.Tracer {
	return otel.Tracer(name)
}

func CloseTrace() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if tracerProvider != nil {
		_ = tracerProvider.Shutdown(ctx)
	}
	if meterProvider != nil {
		_ = meterProvider.Shutdown(ctx)
	}
}
