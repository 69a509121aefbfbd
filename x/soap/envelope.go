// Package soap holds the hand-built wire contract for the remote reporting
// service: request builders, response parsers and the fault classifier. The
// remote service exposes two operation groups on two endpoints, one for
// catalog management and one for report execution.
package soap

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"sort"
	"strings"

	"github.com/reportgate/reportgate/core"
)

// Group selects which remote endpoint an operation is posted to.
type Group int

const (
	GroupManagement Group = iota
	GroupExecution
)

const (
	// Endpoint paths relative to the report server base URL.
	ManagementPath = "/ReportService2010.asmx"
	ExecutionPath  = "/ReportExecution2005.asmx"

	nsManagement = "http://schemas.microsoft.com/sqlserver/reporting/2010/03/01/ReportServer"
	nsExecution  = "http://schemas.microsoft.com/sqlserver/reporting/2005/06/01/ReportExecution"
	nsSoapEnv    = "http://schemas.xmlsoap.org/soap/envelope/"
)

// Request is one outbound SOAP call, ready to be enveloped. The execution
// session token travels in the SOAP header, not the body; callers attach it
// via AttachExecutionID before enveloping. Building an execution-scoped body
// without attaching the token is a defect the remote will reject.
type Request struct {
	Operation   string
	Group       Group
	executionID string
	body        string
}

// AttachExecutionID binds the opaque execution session token to this request.
func (r *Request) AttachExecutionID(id string) {
	r.executionID = id
}

// Action returns the SOAPAction header value for this operation.
func (r Request) Action() string {
	if r.Group == GroupExecution {
		return nsExecution + "/" + r.Operation
	}
	return nsManagement + "/" + r.Operation
}

// Envelope assembles the full request document.
func (r Request) Envelope() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<soap:Envelope xmlns:soap="` + nsSoapEnv + `">`)
	if r.executionID != "" {
		b.WriteString(`<soap:Header><ExecutionHeader xmlns="` + nsExecution + `"><ExecutionID>`)
		b.WriteString(escape(r.executionID))
		b.WriteString(`</ExecutionID></ExecutionHeader></soap:Header>`)
	}
	b.WriteString(`<soap:Body>`)
	b.WriteString(r.body)
	b.WriteString(`</soap:Body></soap:Envelope>`)
	return b.String()
}

// escape makes a user-supplied value safe for inclusion in the wire
// document. Paths, names, parameter values and role names all pass through
// here; skipping it breaks the document on the first ampersand in a report
// name.
func escape(s string) string {
	var b strings.Builder
	xml.EscapeText(&b, []byte(s))
	return b.String()
}

func managementOp(op string, inner string) Request {
	return Request{
		Operation: op,
		Group:     GroupManagement,
		body:      `<` + op + ` xmlns="` + nsManagement + `">` + inner + `</` + op + `>`,
	}
}

func executionOp(op string, inner string) Request {
	return Request{
		Operation: op,
		Group:     GroupExecution,
		body:      `<` + op + ` xmlns="` + nsExecution + `">` + inner + `</` + op + `>`,
	}
}

// BuildListChildren lists the direct children of one catalog folder.
// Recursive server-side listing is deliberately never requested; the walker
// in x/catalog drives recursion itself to keep responses small and failures
// scoped to one level.
func BuildListChildren(path string, recursive bool) Request {
	return managementOp("ListChildren",
		"<ItemPath>"+escape(path)+"</ItemPath>"+
			fmt.Sprintf("<Recursive>%t</Recursive>", recursive))
}

// BuildGetReportParameters queries the parameter specs of one report.
func BuildGetReportParameters(path string) Request {
	return managementOp("GetItemParameters",
		"<ItemPath>"+escape(path)+"</ItemPath>"+
			"<ForRendering>false</ForRendering>")
}

// BuildLoadReport opens a server-side execution context for one report.
func BuildLoadReport(path string) Request {
	return executionOp("LoadReport",
		"<Report>"+escape(path)+"</Report><HistoryID></HistoryID>")
}

// BuildSetExecutionParameters sets parameter values on a loaded execution
// context. Parameters are emitted in sorted name order so the wire document
// is deterministic.
func BuildSetExecutionParameters(params map[string]string) Request {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("<Parameters>")
	for _, name := range names {
		b.WriteString("<ParameterValue><Name>")
		b.WriteString(escape(name))
		b.WriteString("</Name><Value>")
		b.WriteString(escape(params[name]))
		b.WriteString("</Value></ParameterValue>")
	}
	b.WriteString("</Parameters><ParameterLanguage>en-us</ParameterLanguage>")
	return executionOp("SetExecutionParameters", b.String())
}

// BuildRender renders the loaded execution context into one output format.
// The format identifier here is the remote service's, already mapped from
// the public enum by x/execution.
func BuildRender(remoteFormat string) Request {
	return executionOp("Render",
		"<Format>"+escape(remoteFormat)+"</Format><DeviceInfo></DeviceInfo>")
}

// BuildGetPolicies fetches the principal/role bindings of one item.
func BuildGetPolicies(path string) Request {
	return managementOp("GetPolicies", "<ItemPath>"+escape(path)+"</ItemPath>")
}

// BuildSetPolicies replaces the principal/role bindings of one item.
func BuildSetPolicies(path string, policies []core.Policy) Request {
	return managementOp("SetPolicies",
		"<ItemPath>"+escape(path)+"</ItemPath>"+policiesFragment(policies))
}

// BuildGetSystemPolicies fetches the system-wide principal/role bindings.
func BuildGetSystemPolicies() Request {
	return managementOp("GetSystemPolicies", "")
}

// BuildSetSystemPolicies replaces the system-wide principal/role bindings.
func BuildSetSystemPolicies(policies []core.Policy) Request {
	return managementOp("SetSystemPolicies", policiesFragment(policies))
}

func policiesFragment(policies []core.Policy) string {
	var b strings.Builder
	b.WriteString("<Policies>")
	for _, policy := range policies {
		b.WriteString("<Policy><GroupUserName>")
		b.WriteString(escape(policy.Principal))
		b.WriteString("</GroupUserName><Roles>")
		for _, role := range policy.Roles {
			b.WriteString("<Role><Name>")
			b.WriteString(escape(role))
			b.WriteString("</Name></Role>")
		}
		b.WriteString("</Roles></Policy>")
	}
	b.WriteString("</Policies>")
	return b.String()
}

// BuildListRoles enumerates the roles defined on the catalog scope.
func BuildListRoles() Request {
	return managementOp("ListRoles", "<SecurityScope>Catalog</SecurityScope>")
}

// BuildCreateFolder creates one folder under parent.
func BuildCreateFolder(parent, name, description string) Request {
	return managementOp("CreateFolder",
		"<Folder>"+escape(name)+"</Folder>"+
			"<Parent>"+escape(parent)+"</Parent>"+
			descriptionProperties(description))
}

// BuildCreateReport uploads a report definition under parent.
func BuildCreateReport(parent, name, description string, definition []byte, overwrite bool) Request {
	return managementOp("CreateCatalogItem",
		"<ItemType>Report</ItemType>"+
			"<Name>"+escape(name)+"</Name>"+
			"<Parent>"+escape(parent)+"</Parent>"+
			fmt.Sprintf("<Overwrite>%t</Overwrite>", overwrite)+
			"<Definition>"+base64.StdEncoding.EncodeToString(definition)+"</Definition>"+
			descriptionProperties(description))
}

func descriptionProperties(description string) string {
	if description == "" {
		return "<Properties></Properties>"
	}
	return "<Properties><Property><Name>Description</Name><Value>" +
		escape(description) + "</Value></Property></Properties>"
}

// BuildMoveItem moves or renames one item to targetPath.
func BuildMoveItem(path, targetPath string) Request {
	return managementOp("MoveItem",
		"<ItemPath>"+escape(path)+"</ItemPath>"+
			"<Target>"+escape(targetPath)+"</Target>")
}

// BuildDeleteItem removes one item (and, for folders, its subtree).
func BuildDeleteItem(path string) Request {
	return managementOp("DeleteItem", "<ItemPath>"+escape(path)+"</ItemPath>")
}
