package soap

import (
	"encoding/base64"
	"encoding/xml"
	"strings"
	"time"

	"github.com/reportgate/reportgate/core"
)

// The remote schema is permissive about optional elements, so parsers never
// fail on an absent field: strings default to "", booleans to false, dates
// to the Unix epoch. Element matching is by local name, which tolerates the
// namespace prefix variations seen across report server versions.

var epoch = time.Unix(0, 0).UTC()

// Report server timestamps come in a handful of ISO-8601 shapes depending on
// server locale settings.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return epoch
}

func parseBool(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

func itemKind(typeName string) core.ItemKind {
	switch typeName {
	case "Folder":
		return core.KindFolder
	case "Report", "LinkedReport":
		return core.KindReport
	default:
		return core.KindUnknown
	}
}

func malformed(op string, err error) *core.Error {
	return core.NewErrorf(core.ErrMalformedResponse, "unparseable %s response: %v", op, err)
}

type catalogItemXML struct {
	Name         string `xml:"Name"`
	Path         string `xml:"Path"`
	TypeName     string `xml:"TypeName"`
	CreationDate string `xml:"CreationDate"`
	ModifiedDate string `xml:"ModifiedDate"`
	Description  string `xml:"Description"`
}

// ParseListChildren extracts the catalog items of one folder listing.
func ParseListChildren(body []byte) ([]core.CatalogItem, *core.Error) {
	var doc struct {
		Items []catalogItemXML `xml:"Body>ListChildrenResponse>CatalogItems>CatalogItem"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, malformed("ListChildren", err)
	}

	items := make([]core.CatalogItem, 0, len(doc.Items))
	for _, raw := range doc.Items {
		items = append(items, core.CatalogItem{
			Name:        raw.Name,
			Path:        raw.Path,
			Kind:        itemKind(raw.TypeName),
			CreatedAt:   parseDate(raw.CreationDate),
			ModifiedAt:  parseDate(raw.ModifiedDate),
			Description: raw.Description,
		})
	}
	return items, nil
}

type itemParameterXML struct {
	Name          string `xml:"Name"`
	Type          string `xml:"ParameterTypeName"`
	Nullable      string `xml:"Nullable"`
	AllowBlank    string `xml:"AllowBlank"`
	MultiValue    string `xml:"MultiValue"`
	Prompt        string `xml:"Prompt"`
	ValidValues   []struct{ Value string `xml:"Value"` } `xml:"ValidValues>ValidValue"`
	DefaultValues []string `xml:"DefaultValues>Value"`
}

// ParseGetReportParameters extracts the parameter specs of one report.
func ParseGetReportParameters(body []byte) ([]core.ReportParameterSpec, *core.Error) {
	var doc struct {
		Parameters []itemParameterXML `xml:"Body>GetItemParametersResponse>Parameters>ItemParameter"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, malformed("GetItemParameters", err)
	}

	specs := make([]core.ReportParameterSpec, 0, len(doc.Parameters))
	for _, raw := range doc.Parameters {
		spec := core.ReportParameterSpec{
			Name:       raw.Name,
			DataType:   raw.Type,
			Nullable:   parseBool(raw.Nullable),
			AllowBlank: parseBool(raw.AllowBlank),
			MultiValue: parseBool(raw.MultiValue),
			PromptText: raw.Prompt,
		}
		for _, valid := range raw.ValidValues {
			spec.ValidValues = append(spec.ValidValues, valid.Value)
		}
		if len(raw.DefaultValues) > 0 {
			spec.DefaultValue = raw.DefaultValues[0]
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// ParseLoadReport extracts the opaque execution session token. An empty
// token is not an error here; the orchestrator decides what a missing token
// means for the render in flight.
func ParseLoadReport(body []byte) (string, *core.Error) {
	var doc struct {
		ExecutionID string `xml:"Body>LoadReportResponse>executionInfo>ExecutionID"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return "", malformed("LoadReport", err)
	}
	return doc.ExecutionID, nil
}

// ParseRender decodes the rendered document bytes from the base64 Result
// field.
func ParseRender(body []byte) ([]byte, *core.Error) {
	var doc struct {
		Result string `xml:"Body>RenderResponse>Result"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, malformed("Render", err)
	}
	payload, err := base64.StdEncoding.DecodeString(strings.TrimSpace(doc.Result))
	if err != nil {
		return nil, core.NewErrorf(core.ErrMalformedResponse, "undecodable render payload: %v", err)
	}
	return payload, nil
}

type policyXML struct {
	GroupUserName string `xml:"GroupUserName"`
	Roles         []struct{ Name string `xml:"Name"` } `xml:"Roles>Role"`
}

func policiesFromXML(raw []policyXML) []core.Policy {
	policies := make([]core.Policy, 0, len(raw))
	for _, p := range raw {
		roles := make([]string, 0, len(p.Roles))
		for _, role := range p.Roles {
			roles = append(roles, role.Name)
		}
		policies = append(policies, core.Policy{Principal: p.GroupUserName, Roles: roles})
	}
	return policies
}

// ParseGetPolicies extracts the principal/role bindings of one item.
func ParseGetPolicies(body []byte) ([]core.Policy, *core.Error) {
	var doc struct {
		Policies []policyXML `xml:"Body>GetPoliciesResponse>Policies>Policy"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, malformed("GetPolicies", err)
	}
	return policiesFromXML(doc.Policies), nil
}

// ParseGetSystemPolicies extracts the system-scope principal/role bindings.
func ParseGetSystemPolicies(body []byte) ([]core.Policy, *core.Error) {
	var doc struct {
		Policies []policyXML `xml:"Body>GetSystemPoliciesResponse>Policies>Policy"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, malformed("GetSystemPolicies", err)
	}
	return policiesFromXML(doc.Policies), nil
}

// ParseListRoles extracts the role catalog.
func ParseListRoles(body []byte) ([]core.Role, *core.Error) {
	var doc struct {
		Roles []struct {
			Name        string `xml:"Name"`
			Description string `xml:"Description"`
		} `xml:"Body>ListRolesResponse>Roles>Role"`
	}
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, malformed("ListRoles", err)
	}
	roles := make([]core.Role, 0, len(doc.Roles))
	for _, raw := range doc.Roles {
		roles = append(roles, core.Role{Name: raw.Name, Description: raw.Description})
	}
	return roles, nil
}
