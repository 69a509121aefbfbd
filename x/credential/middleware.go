package credential

import (
	"encoding/base64"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/reportgate/reportgate/core"
)

const (
	CallerPrincipalCtxKey     = "rg-callerPrincipal"
	CallerAuthorizationCtxKey = "rg-callerAuthorization"
)

// IdentifyCaller captures the inbound Authorization material so the
// resolver can delegate it downstream. The header is treated as opaque; the
// report server, not this proxy, is the authority that accepts or rejects
// it.
func IdentifyCaller(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader != "" {
			c.Set(CallerAuthorizationCtxKey, authHeader)
			c.Set(CallerPrincipalCtxKey, principalHint(authHeader))
		}
		return next(c)
	}
}

// CallerFromContext reconstructs the caller identity stored by
// IdentifyCaller. An absent header yields an unauthenticated identity.
func CallerFromContext(c echo.Context) core.CallerIdentity {
	authHeader, _ := c.Get(CallerAuthorizationCtxKey).(string)
	principal, _ := c.Get(CallerPrincipalCtxKey).(string)
	return core.CallerIdentity{
		Authenticated: authHeader != "",
		Principal:     principal,
		Authorization: authHeader,
	}
}

// principalHint recovers a username for logs and spans when the scheme
// makes one cheaply available. Best effort only; negotiated schemes stay
// opaque.
func principalHint(authHeader string) string {
	scheme, rest, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Basic") {
		return ""
	}
	decoded, err := base64.StdEncoding.DecodeString(rest)
	if err != nil {
		return ""
	}
	username, _, _ := strings.Cut(string(decoded), ":")
	return username
}
