package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mock_client "github.com/reportgate/reportgate/client/mock"
	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/credential"
	"github.com/reportgate/reportgate/x/util"
)

var testConfig = util.Config{
	ReportServer: util.ReportServer{
		Endpoint: "http://reports.example.com/ReportServer",
	},
}

func newTestService(t *testing.T) (*gomock.Controller, *mock_client.MockClient, Service) {
	ctrl := gomock.NewController(t)
	mockClient := mock_client.NewMockClient(ctrl)
	svc := NewService(mockClient, NewWalker(mockClient), credential.NewResolver(testConfig))
	return ctrl, mockClient, svc
}

func TestSearchMatchesNameAndDescriptionCaseInsensitive(t *testing.T) {
	ctrl, mockClient, svc := newTestService(t)
	defer ctrl.Finish()

	items := []core.CatalogItem{
		{Name: "Monthly Sales", Path: "/Monthly Sales", Kind: core.KindReport},
		{Name: "Ops", Path: "/Ops", Kind: core.KindReport, Description: "monthly operations digest"},
		{Name: "Unrelated", Path: "/Unrelated", Kind: core.KindReport},
	}
	mockClient.EXPECT().ListChildren(gomock.Any(), gomock.Any(), "/").Return(items, nil)

	result, err := svc.Search(context.Background(), core.CallerIdentity{}, "/", "MONTHLY")
	assert.NoError(t, err)
	assert.Len(t, result.Items, 2)
	assert.Empty(t, result.Warnings)
}

func TestSearchSurfacesSubtreeWarnings(t *testing.T) {
	ctrl, mockClient, svc := newTestService(t)
	defer ctrl.Finish()

	mockClient.EXPECT().ListChildren(gomock.Any(), gomock.Any(), "/").
		Return([]core.CatalogItem{{Name: "Secret", Path: "/Secret", Kind: core.KindFolder}}, nil)
	mockClient.EXPECT().ListChildren(gomock.Any(), gomock.Any(), "/Secret").
		Return(nil, core.NewError(core.ErrAccessDenied, "permission denied by report server"))

	result, err := svc.Search(context.Background(), core.CallerIdentity{}, "/", "anything")
	assert.NoError(t, err)
	assert.Len(t, result.Warnings, 1)
}

func TestListChildrenClassifiesFailure(t *testing.T) {
	ctrl, mockClient, svc := newTestService(t)
	defer ctrl.Finish()

	mockClient.EXPECT().ListChildren(gomock.Any(), gomock.Any(), "/Gone").
		Return(nil, core.NewError(core.ErrItemNotFound, "report server item not found"))

	_, err := svc.ListChildren(context.Background(), core.CallerIdentity{}, "/Gone")
	cerr, ok := core.AsError(err)
	if assert.True(t, ok) {
		assert.Equal(t, core.ErrItemNotFound, cerr.Kind)
	}
}

func TestMoveItemUsesSingleTargetPath(t *testing.T) {
	ctrl, mockClient, svc := newTestService(t)
	defer ctrl.Finish()

	mockClient.EXPECT().MoveItem(gomock.Any(), gomock.Any(), "/Sales/Monthly", "/Archive/Monthly").
		Return(nil)

	err := svc.MoveItem(context.Background(), core.CallerIdentity{}, "/Sales/Monthly", "/Archive/Monthly")
	assert.NoError(t, err)
}
