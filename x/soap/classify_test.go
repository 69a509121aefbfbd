package soap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reportgate/reportgate/core"
)

func TestClassifyTable(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		kind   core.ErrorKind
		http   int
	}{
		{
			name: "empty body", status: 500, body: "",
			kind: core.ErrUnknown, http: 500,
		},
		{
			name: "whitespace body", status: 200, body: "   \n",
			kind: core.ErrUnknown, http: 500,
		},
		{
			name:   "item not found exception",
			status: 500,
			body:   `<soap:Fault><faultstring>The item '/Nope' cannot be found. ---&gt; Microsoft.ReportingServices.Diagnostics.Utilities.ItemNotFoundException</faultstring></soap:Fault>`,
			kind:   core.ErrItemNotFound, http: 404,
		},
		{
			name:   "access denied",
			status: 500,
			body:   `<detail><ErrorCode>rsAccessDenied</ErrorCode><Message>The permissions granted to user 'CORP\bob' are not sufficient.</Message></detail>`,
			kind:   core.ErrAccessDenied, http: 403,
		},
		{
			name:   "parameter type mismatch",
			status: 500,
			body:   `<detail><ErrorCode>rsReportParameterTypeMismatch</ErrorCode></detail>`,
			kind:   core.ErrParameterTypeMismatch, http: 400,
		},
		{
			name:   "invalid parameter",
			status: 500,
			body:   `<detail><ErrorCode>rsUnknownReportParameter</ErrorCode></detail>`,
			kind:   core.ErrInvalidParameter, http: 400,
		},
		{
			name:   "logon failure",
			status: 500,
			body:   `<faultstring>Logon failed. rsLogonFailed</faultstring>`,
			kind:   core.ErrAuthenticationFailed, http: 401,
		},
		{
			name:   "bare 401",
			status: 401,
			body:   `NTLM challenge expected`,
			kind:   core.ErrAuthenticationFailed, http: 401,
		},
		{
			name:   "generic fault reason",
			status: 500,
			body:   `<soap:Fault><faultstring>An error occurred during report processing. --&gt; rendering extension unavailable</faultstring><detail><ErrorCode>rsProcessingAborted</ErrorCode></detail></soap:Fault>`,
			kind:   core.ErrRemoteFault, http: 400,
		},
		{
			name:   "fault reason hiding not found",
			status: 500,
			body:   `<soap:Fault><faultstring>The path of the item '/Sales/Gone' was not found.</faultstring></soap:Fault>`,
			kind:   core.ErrItemNotFound, http: 404,
		},
		{
			name:   "transport 404",
			status: 404,
			body:   `<html><body>404 Not Found</body></html>`,
			kind:   core.ErrEndpointNotFound, http: 404,
		},
		{
			name:   "transport 500",
			status: 500,
			body:   `<html>Internal Server Error</html>`,
			kind:   core.ErrInternalServerError, http: 500,
		},
		{
			name:   "unrecognized",
			status: 200,
			body:   "something entirely novel",
			kind:   core.ErrUnrecognized, http: 500,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cerr := Classify(tc.status, []byte(tc.body))
			if assert.NotNil(t, cerr) {
				assert.Equal(t, tc.kind, cerr.Kind)
				assert.Equal(t, tc.http, cerr.HTTPStatus)
			}
		})
	}
}

func TestClassifyExtractsVendorCode(t *testing.T) {
	body := `<detail><ErrorCode>rsAccessDenied</ErrorCode></detail>`
	cerr := Classify(500, []byte(body))
	assert.Equal(t, "rsAccessDenied", cerr.Code)
}

func TestClassifyNotFoundWinsOverFaultReason(t *testing.T) {
	// The not-found marker must dominate even when a structured fault
	// reason is also present.
	body := `<soap:Fault><faultstring>boom</faultstring><detail><ErrorCode>rsItemNotFound</ErrorCode></detail></soap:Fault>`
	cerr := Classify(500, []byte(body))
	assert.Equal(t, core.ErrItemNotFound, cerr.Kind)
}

func TestClassifyFaultReasonEntitiesDecoded(t *testing.T) {
	body := `<faultstring>value must be &lt;= 100 &amp; positive</faultstring>`
	cerr := Classify(500, []byte(body))
	assert.Equal(t, core.ErrRemoteFault, cerr.Kind)
	assert.Equal(t, "value must be <= 100 & positive", cerr.Message)
}

func TestClassifyFallbackTruncates(t *testing.T) {
	huge := strings.Repeat("x", 5000)
	cerr := Classify(200, []byte(huge))
	assert.Equal(t, core.ErrUnrecognized, cerr.Kind)
	assert.LessOrEqual(t, len(cerr.Message), 200)
}

func TestClassifyIsTotal(t *testing.T) {
	statuses := []int{0, 200, 400, 401, 403, 404, 500, 503}
	bodies := []string{"", "<", "plain", `<a></a>`, "\x00\x01"}
	for _, status := range statuses {
		for _, body := range bodies {
			assert.NotNil(t, Classify(status, []byte(body)))
		}
	}
}
