package execution

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slices"

	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/credential"
	"github.com/reportgate/reportgate/x/util"
)

// Handler exposes the render operation
type Handler struct {
	service Service
}

// NewHandler is used for wire.go
func NewHandler(service Service) Handler {
	return Handler{service}
}

type renderRequest struct {
	Path       string            `json:"path"`
	Format     string            `json:"format"`
	Parameters map[string]string `json:"parameters"`
}

// Render validates the request at the boundary (path shape, format
// whitelist) and hands off to the orchestrator. The response is the raw
// rendered document; filename and MIME type are attached here.
func (h Handler) Render(c echo.Context) error {
	ctx := c.Request().Context()

	var req renderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !strings.HasPrefix(req.Path, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "report path must be absolute"})
	}

	format := core.RenderFormat(strings.ToUpper(req.Format))
	if req.Format == "" {
		format = core.FormatPDF
	}
	if !slices.Contains(core.SupportedFormats, format) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("unsupported format %q", req.Format)})
	}

	caller := credential.CallerFromContext(c)
	payload, err := h.service.Render(ctx, caller, req.Path, req.Parameters, format)
	if err != nil {
		return util.RespondError(c, err)
	}

	filename := path.Base(req.Path) + "." + FileExtension(format)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, MimeType(format), payload)
}
