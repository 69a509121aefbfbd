// Package policy exposes the permission surface of the remote catalog:
// per-item and system-wide principal/role bindings, the role catalog, and
// the aggregation that answers "where does this principal hold roles".
package policy

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/reportgate/reportgate/client"
	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/catalog"
	"github.com/reportgate/reportgate/x/credential"
)

var tracer = otel.Tracer("policy")

// Service is the interface for policy service
type Service interface {
	GetPolicies(ctx context.Context, caller core.CallerIdentity, path string) ([]core.Policy, error)
	SetPolicies(ctx context.Context, caller core.CallerIdentity, path string, policies []core.Policy) error
	GetSystemPolicies(ctx context.Context, caller core.CallerIdentity) ([]core.Policy, error)
	SetSystemPolicies(ctx context.Context, caller core.CallerIdentity, policies []core.Policy) error
	ListRoles(ctx context.Context, caller core.CallerIdentity) ([]core.Role, error)
	ForPrincipal(ctx context.Context, caller core.CallerIdentity, root, principal string) (core.PrincipalPolicyResult, error)
}

type service struct {
	client   client.Client
	walker   *catalog.Walker
	resolver credential.Resolver
}

// NewService creates a new policy service
func NewService(client client.Client, walker *catalog.Walker, resolver credential.Resolver) Service {
	return &service{client, walker, resolver}
}

// GetPolicies returns the principal/role bindings of one item.
func (s *service) GetPolicies(ctx context.Context, caller core.CallerIdentity, path string) ([]core.Policy, error) {
	ctx, span := tracer.Start(ctx, "ServiceGetPolicies")
	defer span.End()

	policies, err := s.client.GetPolicies(ctx, s.resolver.Resolve(caller), path)
	if err != nil {
		span.RecordError(err)
		return nil, core.Classified(err)
	}
	return policies, nil
}

// SetPolicies replaces the principal/role bindings of one item.
func (s *service) SetPolicies(ctx context.Context, caller core.CallerIdentity, path string, policies []core.Policy) error {
	ctx, span := tracer.Start(ctx, "ServiceSetPolicies")
	defer span.End()

	if err := s.client.SetPolicies(ctx, s.resolver.Resolve(caller), path, policies); err != nil {
		span.RecordError(err)
		return core.Classified(err)
	}
	return nil
}

// GetSystemPolicies returns the system-scope bindings.
func (s *service) GetSystemPolicies(ctx context.Context, caller core.CallerIdentity) ([]core.Policy, error) {
	ctx, span := tracer.Start(ctx, "ServiceGetSystemPolicies")
	defer span.End()

	policies, err := s.client.GetSystemPolicies(ctx, s.resolver.Resolve(caller))
	if err != nil {
		span.RecordError(err)
		return nil, core.Classified(err)
	}
	return policies, nil
}

// SetSystemPolicies replaces the system-scope bindings.
func (s *service) SetSystemPolicies(ctx context.Context, caller core.CallerIdentity, policies []core.Policy) error {
	ctx, span := tracer.Start(ctx, "ServiceSetSystemPolicies")
	defer span.End()

	if err := s.client.SetSystemPolicies(ctx, s.resolver.Resolve(caller), policies); err != nil {
		span.RecordError(err)
		return core.Classified(err)
	}
	return nil
}

// ListRoles enumerates the roles the remote defines on the catalog scope.
func (s *service) ListRoles(ctx context.Context, caller core.CallerIdentity) ([]core.Role, error) {
	ctx, span := tracer.Start(ctx, "ServiceListRoles")
	defer span.End()

	roles, err := s.client.ListRoles(ctx, s.resolver.Resolve(caller))
	if err != nil {
		span.RecordError(err)
		return nil, core.Classified(err)
	}
	return roles, nil
}

// ForPrincipal walks the subtree under root and collects every item on
// which principal holds roles. Principal comparison is case-insensitive,
// matching the remote's account semantics. Items whose policies could not
// be fetched, and subtrees that could not be listed, are surfaced as
// warnings rather than aborting the aggregation.
func (s *service) ForPrincipal(ctx context.Context, caller core.CallerIdentity, root, principal string) (core.PrincipalPolicyResult, error) {
	ctx, span := tracer.Start(ctx, "ServiceForPrincipal")
	defer span.End()
	span.SetAttributes(attribute.String("policy.principal", principal))

	cred := s.resolver.Resolve(caller)
	result := core.PrincipalPolicyResult{Entries: []core.PrincipalPolicyEntry{}}

	warnings := s.walker.Walk(ctx, cred, root, func(item core.CatalogItem) {
		policies, err := s.client.GetPolicies(ctx, cred, item.Path)
		if err != nil {
			result.Warnings = append(result.Warnings, core.WalkWarning{
				Path:  item.Path,
				Error: core.Classified(err).Message,
			})
			return
		}
		for _, policy := range policies {
			if strings.EqualFold(policy.Principal, principal) {
				result.Entries = append(result.Entries, core.PrincipalPolicyEntry{
					Path:  item.Path,
					Roles: policy.Roles,
				})
			}
		}
	})
	result.Warnings = append(result.Warnings, warnings...)
	return result, nil
}
