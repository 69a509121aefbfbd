package soap

import (
	"encoding/xml"
	"net/http"
	"regexp"
	"strings"

	"github.com/reportgate/reportgate/core"
)

// Classification is a best-effort heuristic over vendor fault text, not a
// schema-validated fault parser. The remote wording has shifted across
// server versions, so everything pattern-shaped lives in this file; callers
// only ever see the typed taxonomy.

const maxFallbackMessage = 200

var (
	notFoundMarkers = []string{
		"ItemNotFoundException",
		"rsItemNotFound",
		"cannot be found",
	}
	accessDeniedMarkers = []string{
		"AccessDeniedException",
		"rsAccessDenied",
		"are not sufficient",
	}
	invalidParameterMarkers = []string{
		"InvalidParameterException",
		"rsInvalidParameter",
		"rsUnknownReportParameter",
	}
	typeMismatchMarkers = []string{
		"ParameterTypeMismatchException",
		"rsReportParameterTypeMismatch",
	}
	authFailedMarkers = []string{
		"LogonFailedException",
		"rsLogonFailed",
		"user name or password is incorrect",
	}

	faultStringRe = regexp.MustCompile(`(?s)<(?:\w+:)?faultstring[^>]*>(.*?)</(?:\w+:)?faultstring>`)
	errorCodeRe   = regexp.MustCompile(`(?s)<(?:\w+:)?ErrorCode[^>]*>(.*?)</(?:\w+:)?ErrorCode>`)
)

func containsAny(haystack string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(haystack, marker) {
			return true
		}
	}
	return false
}

// Classify turns a raw remote failure into exactly one typed error. It is
// total: any (status, body) pair yields a classification, never a panic or a
// bare transport error.
func Classify(status int, body []byte) *core.Error {
	raw := string(body)

	if strings.TrimSpace(raw) == "" {
		e := core.NewError(core.ErrUnknown, "empty response from report server")
		e.HTTPStatus = http.StatusInternalServerError
		return e
	}

	switch {
	case containsAny(raw, notFoundMarkers):
		return withCode(core.NewError(core.ErrItemNotFound, "report server item not found"), raw)
	case containsAny(raw, accessDeniedMarkers):
		return withCode(core.NewError(core.ErrAccessDenied, "permission denied by report server"), raw)
	case containsAny(raw, typeMismatchMarkers):
		return withCode(core.NewError(core.ErrParameterTypeMismatch, "report parameter type mismatch"), raw)
	case containsAny(raw, invalidParameterMarkers):
		return withCode(core.NewError(core.ErrInvalidParameter, "invalid report parameter"), raw)
	case status == http.StatusUnauthorized || containsAny(raw, authFailedMarkers):
		return withCode(core.NewError(core.ErrAuthenticationFailed, "report server rejected credentials"), raw)
	}

	if m := faultStringRe.FindStringSubmatch(raw); m != nil {
		reason := decodeEntities(strings.TrimSpace(m[1]))
		// Some server builds bury the not-found wording inside an
		// otherwise generic fault reason.
		if containsAny(reason, notFoundMarkers) || strings.Contains(reason, "was not found") {
			return withCode(core.NewError(core.ErrItemNotFound, reason), raw)
		}
		return withCode(core.NewError(core.ErrRemoteFault, reason), raw)
	}

	if status == http.StatusNotFound || strings.Contains(raw, "404") && strings.Contains(raw, "Not Found") {
		return core.NewError(core.ErrEndpointNotFound, "report server endpoint not found")
	}
	if status >= http.StatusInternalServerError || strings.Contains(raw, "Internal Server Error") {
		return core.NewError(core.ErrInternalServerError, "report server internal error")
	}

	message := raw
	if len(message) > maxFallbackMessage {
		message = message[:maxFallbackMessage]
	}
	return core.NewError(core.ErrUnrecognized, message)
}

// withCode attaches the vendor error code (rsSomething) when the fault
// carries one.
func withCode(e *core.Error, raw string) *core.Error {
	if m := errorCodeRe.FindStringSubmatch(raw); m != nil {
		e.Code = strings.TrimSpace(m[1])
	}
	return e
}

// decodeEntities unescapes XML character entities in extracted fault text.
func decodeEntities(s string) string {
	var v struct {
		Value string `xml:",chardata"`
	}
	if err := xml.Unmarshal([]byte("<v>"+s+"</v>"), &v); err != nil {
		// Fall back to the common named entities when the fragment is
		// not well-formed on its own.
		r := strings.NewReplacer("&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'", "&amp;", "&")
		return r.Replace(s)
	}
	return v.Value
}
