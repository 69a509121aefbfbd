package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/reportgate/reportgate/client"
	"github.com/reportgate/reportgate/x/credential"
	"github.com/reportgate/reportgate/x/util"
)

const reportgateBanner = `
                          _             _
 _ _ ___ _ __  ___ _ _ __| |_ __ _ __ _| |_ ___
| '_/ -_) '_ \/ _ \ '_/ _|  _/ _` + "`" + ` / _` + "`" + ` |  _/ -_)
|_| \___| .__/\___/_| \__|\__\__, \__,_|\__\___|
        |_|                  |___/
`

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
)

func main() {

	fmt.Fprint(os.Stderr, reportgateBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("Reportgate %s starting...", version))

	config := util.Config{}
	configPath := os.Getenv("REPORTGATE_CONFIG")
	if configPath == "" {
		configPath = "/etc/reportgate/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
	}

	if config.ReportServer.Endpoint == "" {
		slog.Error("reportserver.endpoint is not configured")
		os.Exit(1)
	}
	slog.Info(fmt.Sprintf("Config loaded! Upstream: %s", config.ReportServer.Endpoint))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, "reportgate/api", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "rgapi",
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())

	cl := client.NewClient(config.ReportServer.Endpoint, config.ReportServer.Timeout())

	catalogHandler := SetupCatalogHandler(cl, config)
	executionHandler := SetupExecutionHandler(cl, config)
	policyHandler := SetupPolicyHandler(cl, config)

	apiV1 := e.Group("/api/v1", credential.IdentifyCaller)

	// catalog
	apiV1.GET("/items", catalogHandler.List)
	apiV1.GET("/items/search", catalogHandler.Search)
	apiV1.POST("/items/move", catalogHandler.Move)
	apiV1.DELETE("/items", catalogHandler.Delete)
	apiV1.POST("/folders", catalogHandler.CreateFolder)

	// reports
	apiV1.POST("/reports", catalogHandler.CreateReport)
	apiV1.GET("/reports/parameters", catalogHandler.Parameters)
	apiV1.POST("/reports/render", executionHandler.Render)

	// policies
	apiV1.GET("/policies", policyHandler.Get)
	apiV1.PUT("/policies", policyHandler.Set)
	apiV1.GET("/system/policies", policyHandler.GetSystem)
	apiV1.PUT("/system/policies", policyHandler.SetSystem)
	apiV1.GET("/roles", policyHandler.Roles)
	apiV1.GET("/policies/principal/:principal", policyHandler.ForPrincipal)

	// misc
	apiV1.GET("/version", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"version":      version,
			"gitHash":      util.GetGitHash(),
			"buildTime":    buildTime,
			"buildMachine": buildMachine,
		})
	})
	e.GET("/health", func(c echo.Context) error {
		// The proxy holds no local state; liveness is the process itself.
		// Remote reachability surfaces per-request, classified.
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echoprometheus.NewHandler())

	listen := config.Server.Listen
	if listen == "" {
		listen = ":8000"
	}
	e.Logger.Fatal(e.Start(listen))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
