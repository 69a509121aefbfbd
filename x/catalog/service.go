// Package catalog exposes the browse, search and item-management surface of
// the remote catalog. The remote is the single source of truth; nothing
// here is cached or persisted.
package catalog

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/reportgate/reportgate/client"
	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/credential"
)

var tracer = otel.Tracer("catalog")

// Service is the interface for catalog service
type Service interface {
	ListChildren(ctx context.Context, caller core.CallerIdentity, path string) ([]core.CatalogItem, error)
	Search(ctx context.Context, caller core.CallerIdentity, root, query string) (core.SearchResult, error)
	GetReportParameters(ctx context.Context, caller core.CallerIdentity, path string) ([]core.ReportParameterSpec, error)
	CreateFolder(ctx context.Context, caller core.CallerIdentity, parent, name, description string) error
	CreateReport(ctx context.Context, caller core.CallerIdentity, parent, name, description string, definition []byte, overwrite bool) error
	MoveItem(ctx context.Context, caller core.CallerIdentity, path, targetPath string) error
	DeleteItem(ctx context.Context, caller core.CallerIdentity, path string) error
}

type service struct {
	client   client.Client
	walker   *Walker
	resolver credential.Resolver
}

// NewService creates a new catalog service
func NewService(client client.Client, walker *Walker, resolver credential.Resolver) Service {
	return &service{client, walker, resolver}
}

// ListChildren returns the direct children of one folder.
func (s *service) ListChildren(ctx context.Context, caller core.CallerIdentity, path string) ([]core.CatalogItem, error) {
	ctx, span := tracer.Start(ctx, "ServiceListChildren")
	defer span.End()

	items, err := s.client.ListChildren(ctx, s.resolver.Resolve(caller), path)
	if err != nil {
		span.RecordError(err)
		return nil, core.Classified(err)
	}
	return items, nil
}

// Search walks the subtree under root and returns every item whose name or
// description contains query, case-insensitively. Subtrees that could not
// be listed are reported as warnings rather than failing the search.
func (s *service) Search(ctx context.Context, caller core.CallerIdentity, root, query string) (core.SearchResult, error) {
	ctx, span := tracer.Start(ctx, "ServiceSearch")
	defer span.End()
	span.SetAttributes(attribute.String("search.root", root))

	needle := strings.ToLower(query)
	result := core.SearchResult{Items: []core.CatalogItem{}}
	warnings := s.walker.Walk(ctx, s.resolver.Resolve(caller), root, func(item core.CatalogItem) {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			result.Items = append(result.Items, item)
		}
	})
	result.Warnings = warnings
	return result, nil
}

// GetReportParameters returns the parameter specs one report prompts for.
func (s *service) GetReportParameters(ctx context.Context, caller core.CallerIdentity, path string) ([]core.ReportParameterSpec, error) {
	ctx, span := tracer.Start(ctx, "ServiceGetReportParameters")
	defer span.End()

	specs, err := s.client.GetReportParameters(ctx, s.resolver.Resolve(caller), path)
	if err != nil {
		span.RecordError(err)
		return nil, core.Classified(err)
	}
	return specs, nil
}

// CreateFolder creates one folder under parent.
func (s *service) CreateFolder(ctx context.Context, caller core.CallerIdentity, parent, name, description string) error {
	ctx, span := tracer.Start(ctx, "ServiceCreateFolder")
	defer span.End()

	if err := s.client.CreateFolder(ctx, s.resolver.Resolve(caller), parent, name, description); err != nil {
		span.RecordError(err)
		return core.Classified(err)
	}
	return nil
}

// CreateReport uploads a report definition under parent.
func (s *service) CreateReport(ctx context.Context, caller core.CallerIdentity, parent, name, description string, definition []byte, overwrite bool) error {
	ctx, span := tracer.Start(ctx, "ServiceCreateReport")
	defer span.End()

	if err := s.client.CreateReport(ctx, s.resolver.Resolve(caller), parent, name, description, definition, overwrite); err != nil {
		span.RecordError(err)
		return core.Classified(err)
	}
	return nil
}

// MoveItem moves or renames one item. The destination is a single target
// path; renaming is moving to a path with a new leaf name.
func (s *service) MoveItem(ctx context.Context, caller core.CallerIdentity, path, targetPath string) error {
	ctx, span := tracer.Start(ctx, "ServiceMoveItem")
	defer span.End()

	if err := s.client.MoveItem(ctx, s.resolver.Resolve(caller), path, targetPath); err != nil {
		span.RecordError(err)
		return core.Classified(err)
	}
	return nil
}

// DeleteItem removes one item.
func (s *service) DeleteItem(ctx context.Context, caller core.CallerIdentity, path string) error {
	ctx, span := tracer.Start(ctx, "ServiceDeleteItem")
	defer span.End()

	if err := s.client.DeleteItem(ctx, s.resolver.Resolve(caller), path); err != nil {
		span.RecordError(err)
		return core.Classified(err)
	}
	return nil
}
