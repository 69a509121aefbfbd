// Package credential decides whose identity every outbound call presents to
// the report server. The decision is a closed variant (delegated, service
// account, anonymous) selected once per call; nothing downstream ever looks
// at how the caller authenticated.
package credential

import (
	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/util"
)

// Resolver produces a transport credential binding for one outbound call or
// one execution session.
type Resolver interface {
	Resolve(caller core.CallerIdentity) core.CredentialBinding
}

type resolver struct {
	config util.Config
}

// NewResolver creates a resolver over the static report server config.
func NewResolver(config util.Config) Resolver {
	return &resolver{config}
}

// Resolve never fails: when no usable credential exists it degrades to an
// anonymous binding and lets the remote call site reject and classify the
// failure. It holds no state between calls, because delegated material is
// per-request.
func (r *resolver) Resolve(caller core.CallerIdentity) core.CredentialBinding {
	rs := r.config.ReportServer

	if rs.BypassAuth {
		return core.CredentialBinding{
			Mode:      core.CredentialServiceAccount,
			Principal: rs.Username,
			Domain:    rs.Domain,
			Username:  rs.Username,
			Password:  rs.Password,
			Endpoint:  rs.Endpoint,
		}
	}

	if caller.Authenticated && caller.Authorization != "" {
		return core.CredentialBinding{
			Mode:          core.CredentialDelegated,
			Principal:     caller.Principal,
			Authorization: caller.Authorization,
			Endpoint:      rs.Endpoint,
		}
	}

	if rs.Username != "" {
		return core.CredentialBinding{
			Mode:      core.CredentialServiceAccount,
			Principal: rs.Username,
			Domain:    rs.Domain,
			Username:  rs.Username,
			Password:  rs.Password,
			Endpoint:  rs.Endpoint,
		}
	}

	return core.CredentialBinding{
		Mode:     core.CredentialAnonymous,
		Endpoint: rs.Endpoint,
	}
}
