//go:generate go run go.uber.org/mock/mockgen -source=client.go -destination=mock/client.go
package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/soap"
)

var tracer = otel.Tracer("client")

// Client is the outbound transport for the remote reporting service's
// catalog/management operation group. Every method takes the credential
// binding resolved for this one call; nothing credential-shaped is retained
// between calls.
type Client interface {
	ListChildren(ctx context.Context, cred core.CredentialBinding, path string) ([]core.CatalogItem, error)
	GetReportParameters(ctx context.Context, cred core.CredentialBinding, path string) ([]core.ReportParameterSpec, error)
	GetPolicies(ctx context.Context, cred core.CredentialBinding, path string) ([]core.Policy, error)
	SetPolicies(ctx context.Context, cred core.CredentialBinding, path string, policies []core.Policy) error
	GetSystemPolicies(ctx context.Context, cred core.CredentialBinding) ([]core.Policy, error)
	SetSystemPolicies(ctx context.Context, cred core.CredentialBinding, policies []core.Policy) error
	ListRoles(ctx context.Context, cred core.CredentialBinding) ([]core.Role, error)
	CreateFolder(ctx context.Context, cred core.CredentialBinding, parent, name, description string) error
	CreateReport(ctx context.Context, cred core.CredentialBinding, parent, name, description string, definition []byte, overwrite bool) error
	MoveItem(ctx context.Context, cred core.CredentialBinding, path, targetPath string) error
	DeleteItem(ctx context.Context, cred core.CredentialBinding, path string) error

	// OpenSession allocates a fresh transport context for one render
	// conversation: the three execution calls must share cookies and
	// connection affinity, and must never share them with anything else.
	OpenSession(cred core.CredentialBinding) Session
}

// Session is the execution operation group, scoped to exactly one render.
// The caller owns the token lifecycle: LoadReport yields it, the other two
// present it.
type Session interface {
	LoadReport(ctx context.Context, path string) (string, error)
	SetExecutionParameters(ctx context.Context, token string, params map[string]string) error
	Render(ctx context.Context, token string, remoteFormat string) ([]byte, error)
	Close()
}

type client struct {
	endpoint string
	timeout  time.Duration
}

// NewClient creates a client for the report server at endpoint. The timeout
// bounds every individual outbound call.
func NewClient(endpoint string, timeout time.Duration) Client {
	return &client{endpoint: strings.TrimRight(endpoint, "/"), timeout: timeout}
}

// post issues one SOAP call and returns the raw response body. Non-2xx
// responses are classified here, at the point closest to the failure.
func (c *client) post(ctx context.Context, hc *http.Client, cred core.CredentialBinding, sreq soap.Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.endpoint + soap.ManagementPath
	if sreq.Group == soap.GroupExecution {
		url = c.endpoint + soap.ExecutionPath
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(sreq.Envelope()))
	if err != nil {
		return nil, core.NewErrorf(core.ErrInternalServerError, "building request: %v", err)
	}
	req.Header.Set("Content-Type", `text/xml; charset=utf-8`)
	req.Header.Set("SOAPAction", `"`+sreq.Action()+`"`)

	switch cred.Mode {
	case core.CredentialDelegated:
		req.Header.Set("Authorization", cred.Authorization)
	case core.CredentialServiceAccount:
		username := cred.Username
		if cred.Domain != "" {
			username = cred.Domain + `\` + cred.Username
		}
		req.SetBasicAuth(username, cred.Password)
	}

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, core.NewErrorf(core.ErrInternalServerError, "report server call timed out after %s", c.timeout)
		}
		return nil, core.NewErrorf(core.ErrInternalServerError, "report server unreachable: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, core.NewErrorf(core.ErrInternalServerError, "reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, soap.Classify(resp.StatusCode, body)
	}
	return body, nil
}

// newHTTPClient builds the per-call transport. A fresh client per call keeps
// one caller's negotiated connection state from bleeding into another's.
func newHTTPClient() *http.Client {
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}

func (c *client) ListChildren(ctx context.Context, cred core.CredentialBinding, path string) ([]core.CatalogItem, error) {
	ctx, span := tracer.Start(ctx, "Client.ListChildren")
	defer span.End()

	body, err := c.post(ctx, newHTTPClient(), cred, soap.BuildListChildren(path, false))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	items, cerr := soap.ParseListChildren(body)
	if cerr != nil {
		span.RecordError(cerr)
		return nil, cerr
	}
	return items, nil
}

func (c *client) GetReportParameters(ctx context.Context, cred core.CredentialBinding, path string) ([]core.ReportParameterSpec, error) {
	ctx, span := tracer.Start(ctx, "Client.GetReportParameters")
	defer span.End()

	body, err := c.post(ctx, newHTTPClient(), cred, soap.BuildGetReportParameters(path))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	specs, cerr := soap.ParseGetReportParameters(body)
	if cerr != nil {
		span.RecordError(cerr)
		return nil, cerr
	}
	return specs, nil
}

func (c *client) GetPolicies(ctx context.Context, cred core.CredentialBinding, path string) ([]core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Client.GetPolicies")
	defer span.End()

	body, err := c.post(ctx, newHTTPClient(), cred, soap.BuildGetPolicies(path))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	policies, cerr := soap.ParseGetPolicies(body)
	if cerr != nil {
		span.RecordError(cerr)
		return nil, cerr
	}
	return policies, nil
}

func (c *client) SetPolicies(ctx context.Context, cred core.CredentialBinding, path string, policies []core.Policy) error {
	ctx, span := tracer.Start(ctx, "Client.SetPolicies")
	defer span.End()

	_, err := c.post(ctx, newHTTPClient(), cred, soap.BuildSetPolicies(path, policies))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) GetSystemPolicies(ctx context.Context, cred core.CredentialBinding) ([]core.Policy, error) {
	ctx, span := tracer.Start(ctx, "Client.GetSystemPolicies")
	defer span.End()

	body, err := c.post(ctx, newHTTPClient(), cred, soap.BuildGetSystemPolicies())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	policies, cerr := soap.ParseGetSystemPolicies(body)
	if cerr != nil {
		span.RecordError(cerr)
		return nil, cerr
	}
	return policies, nil
}

func (c *client) SetSystemPolicies(ctx context.Context, cred core.CredentialBinding, policies []core.Policy) error {
	ctx, span := tracer.Start(ctx, "Client.SetSystemPolicies")
	defer span.End()

	_, err := c.post(ctx, newHTTPClient(), cred, soap.BuildSetSystemPolicies(policies))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) ListRoles(ctx context.Context, cred core.CredentialBinding) ([]core.Role, error) {
	ctx, span := tracer.Start(ctx, "Client.ListRoles")
	defer span.End()

	body, err := c.post(ctx, newHTTPClient(), cred, soap.BuildListRoles())
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	roles, cerr := soap.ParseListRoles(body)
	if cerr != nil {
		span.RecordError(cerr)
		return nil, cerr
	}
	return roles, nil
}

func (c *client) CreateFolder(ctx context.Context, cred core.CredentialBinding, parent, name, description string) error {
	ctx, span := tracer.Start(ctx, "Client.CreateFolder")
	defer span.End()

	_, err := c.post(ctx, newHTTPClient(), cred, soap.BuildCreateFolder(parent, name, description))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) CreateReport(ctx context.Context, cred core.CredentialBinding, parent, name, description string, definition []byte, overwrite bool) error {
	ctx, span := tracer.Start(ctx, "Client.CreateReport")
	defer span.End()

	_, err := c.post(ctx, newHTTPClient(), cred, soap.BuildCreateReport(parent, name, description, definition, overwrite))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) MoveItem(ctx context.Context, cred core.CredentialBinding, path, targetPath string) error {
	ctx, span := tracer.Start(ctx, "Client.MoveItem")
	defer span.End()

	_, err := c.post(ctx, newHTTPClient(), cred, soap.BuildMoveItem(path, targetPath))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (c *client) DeleteItem(ctx context.Context, cred core.CredentialBinding, path string) error {
	ctx, span := tracer.Start(ctx, "Client.DeleteItem")
	defer span.End()

	_, err := c.post(ctx, newHTTPClient(), cred, soap.BuildDeleteItem(path))
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// session shares one cookie-jarred http.Client across the three execution
// calls of a single render, then is discarded. The jar carries the remote's
// session-affinity cookies; pooling it across renders would also pool the
// caller's identity, so there is deliberately no reuse.
type session struct {
	parent *client
	cred   core.CredentialBinding
	hc     *http.Client
}

func (c *client) OpenSession(cred core.CredentialBinding) Session {
	jar, _ := cookiejar.New(nil)
	return &session{
		parent: c,
		cred:   cred,
		hc: &http.Client{
			Jar:       jar,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (s *session) LoadReport(ctx context.Context, path string) (string, error) {
	ctx, span := tracer.Start(ctx, "Session.LoadReport")
	defer span.End()

	body, err := s.parent.post(ctx, s.hc, s.cred, soap.BuildLoadReport(path))
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	token, cerr := soap.ParseLoadReport(body)
	if cerr != nil {
		span.RecordError(cerr)
		return "", cerr
	}
	return token, nil
}

func (s *session) SetExecutionParameters(ctx context.Context, token string, params map[string]string) error {
	ctx, span := tracer.Start(ctx, "Session.SetExecutionParameters")
	defer span.End()

	req := soap.BuildSetExecutionParameters(params)
	req.AttachExecutionID(token)
	_, err := s.parent.post(ctx, s.hc, s.cred, req)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

func (s *session) Render(ctx context.Context, token string, remoteFormat string) ([]byte, error) {
	ctx, span := tracer.Start(ctx, "Session.Render")
	defer span.End()

	req := soap.BuildRender(remoteFormat)
	req.AttachExecutionID(token)
	body, err := s.parent.post(ctx, s.hc, s.cred, req)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	payload, cerr := soap.ParseRender(body)
	if cerr != nil {
		span.RecordError(cerr)
		return nil, cerr
	}
	return payload, nil
}

func (s *session) Close() {
	s.hc.CloseIdleConnections()
}
