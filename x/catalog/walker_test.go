package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_client "github.com/reportgate/reportgate/client/mock"
	"github.com/reportgate/reportgate/core"
)

func folder(path string) core.CatalogItem {
	return core.CatalogItem{Name: leaf(path), Path: path, Kind: core.KindFolder}
}

func report(path string) core.CatalogItem {
	return core.CatalogItem{Name: leaf(path), Path: path, Kind: core.KindReport}
}

func leaf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_client.NewMockClient(ctrl)
	cred := core.CredentialBinding{Mode: core.CredentialAnonymous}

	// /
	// ├── Sales/
	// │   ├── Monthly
	// │   └── Archive/
	// │       └── Q1
	// └── Readme
	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/").
		Return([]core.CatalogItem{folder("/Sales"), report("/Readme")}, nil)
	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/Sales").
		Return([]core.CatalogItem{report("/Sales/Monthly"), folder("/Sales/Archive")}, nil)
	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/Sales/Archive").
		Return([]core.CatalogItem{report("/Sales/Archive/Q1")}, nil)

	var visited []string
	warnings := NewWalker(mockClient).Walk(context.Background(), cred, "/", func(item core.CatalogItem) {
		visited = append(visited, item.Path)
	})

	assert.Empty(t, warnings)
	// Depth-first, parents before children, remote sibling order kept.
	assert.Equal(t, []string{
		"/Sales", "/Readme",
		"/Sales/Monthly", "/Sales/Archive",
		"/Sales/Archive/Q1",
	}, visited)
}

func TestWalkFailedSubtreeDoesNotAbortSiblings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_client.NewMockClient(ctrl)
	cred := core.CredentialBinding{Mode: core.CredentialAnonymous}
	denied := core.NewError(core.ErrAccessDenied, "permission denied by report server")

	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/").
		Return([]core.CatalogItem{folder("/Secret"), folder("/Public")}, nil)
	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/Secret").
		Return(nil, denied)
	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/Public").
		Return([]core.CatalogItem{report("/Public/Weekly")}, nil)

	var visited []string
	warnings := NewWalker(mockClient).Walk(context.Background(), cred, "/", func(item core.CatalogItem) {
		visited = append(visited, item.Path)
	})

	if assert.Len(t, warnings, 1) {
		assert.Equal(t, "/Secret", warnings[0].Path)
	}
	// The sibling subtree is fully visited.
	assert.Contains(t, visited, "/Public/Weekly")
	assert.Equal(t, []string{"/Secret", "/Public", "/Public/Weekly"}, visited)
}

func TestWalkUnknownKindIsLeaf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_client.NewMockClient(ctrl)
	cred := core.CredentialBinding{Mode: core.CredentialAnonymous}

	datasource := core.CatalogItem{Name: "dwh", Path: "/dwh", Kind: core.KindUnknown}
	mockClient.EXPECT().ListChildren(gomock.Any(), cred, "/").
		Return([]core.CatalogItem{datasource}, nil)
	// No expectation for "/dwh": recursing into it would fail the test.

	var visited []string
	warnings := NewWalker(mockClient).Walk(context.Background(), cred, "/", func(item core.CatalogItem) {
		visited = append(visited, item.Path)
	})

	assert.Empty(t, warnings)
	assert.Equal(t, []string{"/dwh"}, visited)
}

func TestWalkStopsOnCancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock_client.NewMockClient(ctrl)
	cred := core.CredentialBinding{Mode: core.CredentialAnonymous}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	warnings := NewWalker(mockClient).Walk(ctx, cred, "/", func(core.CatalogItem) {
		t.Fatal("visited after cancellation")
	})
	assert.NotEmpty(t, warnings)
}
