// Package execution drives the session-bound render conversation against
// the remote service: load the report into a server-side execution context,
// optionally set parameters against that context, then render using the
// same context.
package execution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/xid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/reportgate/reportgate/client"
	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/credential"
)

var tracer = otel.Tracer("execution")

var renderCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rg_renders_total",
		Help: "rendered documents by output format",
	},
	[]string{"format"},
)

var renderFailureCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rg_render_failures_total",
		Help: "failed renders by classified error kind",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(renderCounter, renderFailureCounter)
}

// Service is the interface for the render orchestrator
type Service interface {
	Render(ctx context.Context, caller core.CallerIdentity, path string, params map[string]string, format core.RenderFormat) ([]byte, error)
}

type service struct {
	client   client.Client
	resolver credential.Resolver
}

// NewService creates a new execution service
func NewService(client client.Client, resolver credential.Resolver) Service {
	return &service{client, resolver}
}

// Render walks the Idle → Loaded → ParametersSet → Rendered sequence. The
// first failing step classifies the failure and short-circuits the rest; an
// execution context orphaned on the remote side by an aborted render is the
// remote's own expiry problem, so there is no cleanup call.
func (s *service) Render(ctx context.Context, caller core.CallerIdentity, path string, params map[string]string, format core.RenderFormat) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "ServiceRender")
	defer span.End()

	renderID := xid.New().String()
	span.SetAttributes(
		attribute.String("render.id", renderID),
		attribute.String("render.format", string(format)),
	)

	cred := s.resolver.Resolve(caller)
	sess := s.client.OpenSession(cred)
	defer sess.Close()

	token, err := sess.LoadReport(ctx, path)
	if err != nil {
		span.RecordError(err)
		return nil, s.fail(renderID, "load", err)
	}
	if token == "" {
		err := core.NewErrorf(core.ErrMissingSessionToken, "report server returned no execution token for %s", path)
		span.RecordError(err)
		return nil, s.fail(renderID, "load", err)
	}

	if len(params) > 0 {
		if err := sess.SetExecutionParameters(ctx, token, params); err != nil {
			span.RecordError(err)
			return nil, s.fail(renderID, "parameters", err)
		}
	}

	payload, err := sess.Render(ctx, token, RemoteFormat(format))
	if err != nil {
		span.RecordError(err)
		return nil, s.fail(renderID, "render", err)
	}

	renderCounter.WithLabelValues(string(format)).Inc()
	slog.DebugContext(ctx, fmt.Sprintf("rendered %s as %s (%d bytes)", path, format, len(payload)),
		slog.String("renderID", renderID))
	return payload, nil
}

func (s *service) fail(renderID, step string, err error) error {
	cerr := core.Classified(err)
	renderFailureCounter.WithLabelValues(string(cerr.Kind)).Inc()
	slog.Warn(fmt.Sprintf("render %s failed at %s: %v", renderID, step, cerr))
	return cerr
}
