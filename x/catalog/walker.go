package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reportgate/reportgate/client"
	"github.com/reportgate/reportgate/core"
)

// Visitor receives every item the walk reaches, parents before children,
// siblings in the order the remote returned them.
type Visitor func(item core.CatalogItem)

var walkSkipCounter = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "rg_walk_skipped_subtrees_total",
		Help: "catalog subtrees skipped during walks because their listing failed",
	},
)

func init() {
	prometheus.MustRegister(walkSkipCounter)
}

// Walker traverses the remote folder hierarchy one level at a time. The
// remote does support recursive listing, but it is deliberately not used:
// level-by-level calls keep response sizes and failure surfaces small and
// uniform.
type Walker struct {
	client client.Client
}

// NewWalker creates a new catalog walker
func NewWalker(client client.Client) *Walker {
	return &Walker{client}
}

// Walk visits everything reachable from root, depth-first. It is built on
// an explicit worklist rather than call recursion, so memory is bounded by
// the frontier, not the hierarchy depth. A subtree whose listing fails is
// recorded as a warning and skipped; its siblings are still walked. Items
// of unknown kind are visited but never recursed into.
func (w *Walker) Walk(ctx context.Context, cred core.CredentialBinding, root string, visit Visitor) []core.WalkWarning {
	var warnings []core.WalkWarning

	worklist := []string{root}
	for len(worklist) > 0 {
		if ctx.Err() != nil {
			warnings = append(warnings, core.WalkWarning{Path: worklist[len(worklist)-1], Error: ctx.Err().Error()})
			break
		}

		path := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		items, err := w.client.ListChildren(ctx, cred, path)
		if err != nil {
			cerr := core.Classified(err)
			warnings = append(warnings, core.WalkWarning{Path: path, Error: cerr.Message})
			walkSkipCounter.Inc()
			slog.WarnContext(ctx, fmt.Sprintf("walk skipping %s: %v", path, cerr))
			continue
		}

		var folders []string
		for _, item := range items {
			visit(item)
			if item.Kind == core.KindFolder {
				folders = append(folders, item.Path)
			}
		}
		// Reversed push so the first-listed folder is walked first.
		for i := len(folders) - 1; i >= 0; i-- {
			worklist = append(worklist, folders[i])
		}
	}

	return warnings
}
