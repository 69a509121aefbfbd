package policy

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reportgate/reportgate/core"
	"github.com/reportgate/reportgate/x/credential"
	"github.com/reportgate/reportgate/x/util"
)

// Handler exposes item and system policies
type Handler struct {
	service Service
}

// NewHandler is used for wire.go
func NewHandler(service Service) Handler {
	return Handler{service}
}

// Get returns the policies of one item
func (h Handler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	path := c.QueryParam("path")
	if !strings.HasPrefix(path, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path must be absolute"})
	}

	policies, err := h.service.GetPolicies(ctx, credential.CallerFromContext(c), path)
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[[]core.Policy]{Status: "ok", Content: policies})
}

type setPoliciesRequest struct {
	Policies []core.Policy `json:"policies"`
}

// Set replaces the policies of one item
func (h Handler) Set(c echo.Context) error {
	ctx := c.Request().Context()

	path := c.QueryParam("path")
	if !strings.HasPrefix(path, "/") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "path must be absolute"})
	}
	var req setPoliciesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := h.service.SetPolicies(ctx, credential.CallerFromContext(c), path, req.Policies); err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// GetSystem returns the system-scope policies
func (h Handler) GetSystem(c echo.Context) error {
	ctx := c.Request().Context()

	policies, err := h.service.GetSystemPolicies(ctx, credential.CallerFromContext(c))
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[[]core.Policy]{Status: "ok", Content: policies})
}

// SetSystem replaces the system-scope policies
func (h Handler) SetSystem(c echo.Context) error {
	ctx := c.Request().Context()

	var req setPoliciesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	if err := h.service.SetSystemPolicies(ctx, credential.CallerFromContext(c), req.Policies); err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// Roles lists the remote's catalog-scope roles
func (h Handler) Roles(c echo.Context) error {
	ctx := c.Request().Context()

	roles, err := h.service.ListRoles(ctx, credential.CallerFromContext(c))
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[[]core.Role]{Status: "ok", Content: roles})
}

// ForPrincipal aggregates the policies mentioning one principal across a
// subtree
func (h Handler) ForPrincipal(c echo.Context) error {
	ctx := c.Request().Context()

	principal := c.Param("principal")
	if principal == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "principal is required"})
	}
	root := c.QueryParam("root")
	if root == "" {
		root = "/"
	}

	result, err := h.service.ForPrincipal(ctx, credential.CallerFromContext(c), root, principal)
	if err != nil {
		return util.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, core.ResponseBase[core.PrincipalPolicyResult]{Status: "ok", Content: result})
}
