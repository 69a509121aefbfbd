package catalog

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/credential"
	"github.com/reportgate/reportgate/x/util"
)

// Handler exposes catalog browsing and item management
type Handler struct {
	service Service
}

// NewHandler is used for wire.go
func NewHandler(service Service) Handler {
	return Handler{service}
}

// Catalog paths contain slashes, so they travel as query parameters rather
// than route segments.
func itemPath(c echo.Context) (string, bool) {
	path := c.QueryParam("path")
	return path, strings.HasPrefix(path, "/")
}

// List returns the direct children of one folder
func (h Handler) List(c echo.Context) error {
	ctx := c.Request().Context()

	path := c.QueryParam("path")
	if path == "" {
		path = "/"
	}
	if !strings.HasPrefix(path, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path must be absolute"})
	}

	items, err := h.service.ListChildren(ctx, credential.CallerFromContext(c), path)
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[[]core.CatalogItem]{Status: "ok", Content: items})
}

// Search returns items under root matching the query, with warnings for
// subtrees that could not be listed
func (h Handler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	root := c.QueryParam("root")
	if root == "" {
		root = "/"
	}
	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
	}

	result, err := h.service.Search(ctx, credential.CallerFromContext(c), root, query)
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[core.SearchResult]{Status: "ok", Content: result})
}

// Parameters returns the parameter specs of one report
func (h Handler) Parameters(c echo.Context) error {
	ctx := c.Request().Context()

	path, ok := itemPath(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path must be absolute"})
	}

	specs, err := h.service.GetReportParameters(ctx, credential.CallerFromContext(c), path)
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[[]core.ReportParameterSpec]{Status: "ok", Content: specs})
}

type createFolderRequest struct {
	Parent      string `json:"parent"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateFolder creates one folder
func (h Handler) CreateFolder(c echo.Context) error {
	ctx := c.Request().Context()

	var req createFolderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || !strings.HasPrefix(req.Parent, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and absolute parent are required"})
	}

	if err := h.service.CreateFolder(ctx, credential.CallerFromContext(c), req.Parent, req.Name, req.Description); err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok"})
}

type createReportRequest struct {
	Parent      string `json:"parent"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// Definition is the base64-encoded report definition document.
	Definition string `json:"definition"`
	Overwrite  bool   `json:"overwrite"`
}

// CreateReport uploads a report definition
func (h Handler) CreateReport(c echo.Context) error {
	ctx := c.Request().Context()

	var req createReportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Name == "" || !strings.HasPrefix(req.Parent, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and absolute parent are required"})
	}
	definition, err := base64.StdEncoding.DecodeString(req.Definition)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "definition must be base64"})
	}

	if err := h.service.CreateReport(ctx, credential.CallerFromContext(c), req.Parent, req.Name, req.Description, definition, req.Overwrite); err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"status": "ok"})
}

type moveItemRequest struct {
	Path       string `json:"path"`
	TargetPath string `json:"targetPath"`
}

// Move relocates one item to a new path
func (h Handler) Move(c echo.Context) error {
	ctx := c.Request().Context()

	var req moveItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !strings.HasPrefix(req.Path, "/") || !strings.HasPrefix(req.TargetPath, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path and targetPath must be absolute"})
	}

	if err := h.service.MoveItem(ctx, credential.CallerFromContext(c), req.Path, req.TargetPath); err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Delete removes one item
func (h Handler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	path, ok := itemPath(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path must be absolute"})
	}

	if err := h.service.DeleteItem(ctx, credential.CallerFromContext(c), path); err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
