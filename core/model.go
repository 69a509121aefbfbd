package core

import "time"

// ItemKind discriminates catalog entries. The remote catalog may contain
// types beyond folders and reports (linked reports, data sources); anything
// unrecognized is surfaced as KindUnknown and treated as a leaf.
type ItemKind string

const (
	KindFolder  ItemKind = "Folder"
	KindReport  ItemKind = "Report"
	KindUnknown ItemKind = "Unknown"
)

// CatalogItem is an immutable snapshot of one entry in the remote catalog.
// Path is the unique hierarchical identifier ("/" root, "/" separators).
type CatalogItem struct {
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Kind        ItemKind  `json:"kind"`
	CreatedAt   time.Time `json:"createdAt"`
	ModifiedAt  time.Time `json:"modifiedAt"`
	Description string    `json:"description"`
}

// ReportParameterSpec describes one parameter a report prompts for.
type ReportParameterSpec struct {
	Name         string   `json:"name"`
	DataType     string   `json:"dataType"`
	Nullable     bool     `json:"nullable"`
	AllowBlank   bool     `json:"allowBlank"`
	MultiValue   bool     `json:"multiValue"`
	ValidValues  []string `json:"validValues"`
	DefaultValue string   `json:"defaultValue"`
	PromptText   string   `json:"promptText"`
}

// Policy binds one principal to a set of roles on a catalog item or on the
// system scope. Role names are opaque identifiers owned by the remote service.
type Policy struct {
	Principal string   `json:"principal"`
	Roles     []string `json:"roles"`
}

// Role as enumerated by the remote service.
type Role struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RenderFormat is the closed set of output formats accepted at the boundary.
type RenderFormat string

const (
	FormatPDF   RenderFormat = "PDF"
	FormatExcel RenderFormat = "EXCEL"
	FormatWord  RenderFormat = "WORD"
	FormatCSV   RenderFormat = "CSV"
	FormatXML   RenderFormat = "XML"
	FormatImage RenderFormat = "IMAGE"
)

// SupportedFormats is the whitelist the HTTP layer validates against before
// a render request reaches the orchestrator.
var SupportedFormats = []RenderFormat{
	FormatPDF, FormatExcel, FormatWord, FormatCSV, FormatXML, FormatImage,
}

// CredentialMode is the closed variant selected once per call by the
// credential resolver. Downstream code depends only on this tag, never on
// how the caller authenticated.
type CredentialMode string

const (
	CredentialDelegated      CredentialMode = "delegated"
	CredentialServiceAccount CredentialMode = "service_account"
	CredentialAnonymous      CredentialMode = "anonymous"
)

// CredentialBinding is the transport-level credential for one outbound call
// or one execution session. Derived fresh per call and never cached across
// requests: delegated material is per-HTTP-request and must not leak between
// callers.
type CredentialBinding struct {
	Mode      CredentialMode
	Principal string
	Domain    string

	// Authorization carries the caller's verbatim Authorization header in
	// delegated mode. Opaque to this system.
	Authorization string

	// Username and Password are set in service-account mode only.
	Username string
	Password string

	// Endpoint scopes the binding to one remote authentication realm so a
	// service-account credential for one endpoint never leaks to another.
	Endpoint string
}

// CallerIdentity is what the HTTP layer knows about the inbound caller.
type CallerIdentity struct {
	Authenticated bool
	Principal     string
	Authorization string
}

// WalkWarning records one subtree the catalog walker had to skip. Walks
// return these alongside their results instead of aborting.
type WalkWarning struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}
