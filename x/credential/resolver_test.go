package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/util"
)

func configWith(rs util.ReportServer) util.Config {
	rs.Endpoint = "http://reports.example.com/ReportServer"
	return util.Config{ReportServer: rs}
}

func TestResolveBypassIgnoresCaller(t *testing.T) {
	resolver := NewResolver(configWith(util.ReportServer{
		BypassAuth: true,
		Domain:     "CORP",
		Username:   "svc_reports",
		Password:   "hunter2",
	}))

	callers := []core.CallerIdentity{
		{},
		{Authenticated: true, Principal: "alice", Authorization: "Negotiate abc"},
	}
	for _, caller := range callers {
		binding := resolver.Resolve(caller)
		assert.Equal(t, core.CredentialServiceAccount, binding.Mode)
		assert.Equal(t, "svc_reports", binding.Username)
		assert.Equal(t, "CORP", binding.Domain)
	}
}

func TestResolveDelegatesAuthenticatedCaller(t *testing.T) {
	resolver := NewResolver(configWith(util.ReportServer{
		Username: "svc_reports",
		Password: "hunter2",
	}))

	binding := resolver.Resolve(core.CallerIdentity{
		Authenticated: true,
		Principal:     "alice",
		Authorization: "Negotiate TlRMTVNT",
	})
	assert.Equal(t, core.CredentialDelegated, binding.Mode)
	assert.Equal(t, "Negotiate TlRMTVNT", binding.Authorization)
	// The static credential must not ride along with a delegated call.
	assert.Empty(t, binding.Password)
}

func TestResolveFallsBackToServiceAccount(t *testing.T) {
	resolver := NewResolver(configWith(util.ReportServer{
		Username: "svc_reports",
		Password: "hunter2",
	}))

	binding := resolver.Resolve(core.CallerIdentity{})
	assert.Equal(t, core.CredentialServiceAccount, binding.Mode)
	assert.Equal(t, "http://reports.example.com/ReportServer", binding.Endpoint)
}

func TestResolveDegradesToAnonymous(t *testing.T) {
	resolver := NewResolver(configWith(util.ReportServer{}))

	binding := resolver.Resolve(core.CallerIdentity{})
	assert.Equal(t, core.CredentialAnonymous, binding.Mode)
	assert.Empty(t, binding.Authorization)
	assert.Empty(t, binding.Username)
}

func TestPrincipalHint(t *testing.T) {
	// Basic dXNlcjpwYXNz == user:pass
	assert.Equal(t, "user", principalHint("Basic dXNlcjpwYXNz"))
	assert.Equal(t, "", principalHint("Negotiate abcdef"))
	assert.Equal(t, "", principalHint("Basic %%%"))
	assert.Equal(t, "", principalHint("garbage"))
}
