package soap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/reportgate/reportgate/core"
)

const listChildrenResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/">
  <soap:Body>
    <ListChildrenResponse xmlns="http://schemas.microsoft.com/sqlserver/reporting/2010/03/01/ReportServer">
      <CatalogItems>
        <CatalogItem>
          <Name>Archive</Name>
          <Path>/Sales/Archive</Path>
          <TypeName>Folder</TypeName>
          <CreationDate>2023-05-01T09:30:00</CreationDate>
          <ModifiedDate>2023-06-01T09:30:00</ModifiedDate>
          <Description>Old reports</Description>
        </CatalogItem>
        <CatalogItem>
          <Name>Monthly</Name>
          <Path>/Sales/Monthly</Path>
          <TypeName>Report</TypeName>
          <CreationDate>2024-01-15T08:00:00</CreationDate>
          <ModifiedDate>2024-02-15T08:00:00</ModifiedDate>
        </CatalogItem>
      </CatalogItems>
    </ListChildrenResponse>
  </soap:Body>
</soap:Envelope>`

func TestParseListChildren(t *testing.T) {
	items, cerr := ParseListChildren([]byte(listChildrenResponse))
	assert.Nil(t, cerr)
	assert.Len(t, items, 2)

	assert.Equal(t, core.KindFolder, items[0].Kind)
	assert.Equal(t, "/Sales/Archive", items[0].Path)
	assert.Equal(t, "Old reports", items[0].Description)
	assert.Equal(t, 2023, items[0].CreatedAt.Year())

	assert.Equal(t, core.KindReport, items[1].Kind)
	// Absent description defaults to empty, not an error.
	assert.Equal(t, "", items[1].Description)
}

func TestParseListChildrenUnknownTypeAndBadDate(t *testing.T) {
	body := `<Envelope><Body><ListChildrenResponse><CatalogItems>
		<CatalogItem><Name>ds</Name><Path>/ds</Path><TypeName>DataSource</TypeName>
		<CreationDate>yesterday</CreationDate></CatalogItem>
	</CatalogItems></ListChildrenResponse></Body></Envelope>`

	items, cerr := ParseListChildren([]byte(body))
	assert.Nil(t, cerr)
	assert.Len(t, items, 1)
	assert.Equal(t, core.KindUnknown, items[0].Kind)
	assert.Equal(t, time.Unix(0, 0).UTC(), items[0].CreatedAt)
}

func TestParseListChildrenMalformed(t *testing.T) {
	_, cerr := ParseListChildren([]byte("this is not xml <"))
	if assert.NotNil(t, cerr) {
		assert.Equal(t, core.ErrMalformedResponse, cerr.Kind)
	}
}

func TestParseGetReportParameters(t *testing.T) {
	body := `<Envelope><Body><GetItemParametersResponse><Parameters>
		<ItemParameter>
			<Name>StartDate</Name>
			<ParameterTypeName>DateTime</ParameterTypeName>
			<Nullable>false</Nullable>
			<AllowBlank>false</AllowBlank>
			<MultiValue>false</MultiValue>
			<Prompt>Start date</Prompt>
			<DefaultValues><Value>2024-01-01</Value></DefaultValues>
		</ItemParameter>
		<ItemParameter>
			<Name>Region</Name>
			<ParameterTypeName>String</ParameterTypeName>
			<Nullable>true</Nullable>
			<MultiValue>true</MultiValue>
			<ValidValues>
				<ValidValue><Label>Europe</Label><Value>EMEA</Value></ValidValue>
				<ValidValue><Label>Americas</Label><Value>AMER</Value></ValidValue>
			</ValidValues>
		</ItemParameter>
	</Parameters></GetItemParametersResponse></Body></Envelope>`

	specs, cerr := ParseGetReportParameters([]byte(body))
	assert.Nil(t, cerr)
	assert.Len(t, specs, 2)

	assert.Equal(t, "StartDate", specs[0].Name)
	assert.Equal(t, "DateTime", specs[0].DataType)
	assert.False(t, specs[0].Nullable)
	assert.Equal(t, "2024-01-01", specs[0].DefaultValue)
	assert.Equal(t, "Start date", specs[0].PromptText)

	assert.True(t, specs[1].Nullable)
	assert.True(t, specs[1].MultiValue)
	assert.Equal(t, []string{"EMEA", "AMER"}, specs[1].ValidValues)
	assert.Equal(t, "", specs[1].DefaultValue)
}

func TestParseLoadReport(t *testing.T) {
	body := `<Envelope><Body><LoadReportResponse><executionInfo>
		<ExecutionID>j4x5kfoqmzz1adnd45q5g055</ExecutionID>
		<ReportPath>/Sales/Monthly</ReportPath>
	</executionInfo></LoadReportResponse></Body></Envelope>`

	token, cerr := ParseLoadReport([]byte(body))
	assert.Nil(t, cerr)
	assert.Equal(t, "j4x5kfoqmzz1adnd45q5g055", token)
}

func TestParseLoadReportMissingToken(t *testing.T) {
	body := `<Envelope><Body><LoadReportResponse><executionInfo>
	</executionInfo></LoadReportResponse></Body></Envelope>`

	token, cerr := ParseLoadReport([]byte(body))
	assert.Nil(t, cerr)
	assert.Equal(t, "", token)
}

func TestParseRender(t *testing.T) {
	// base64 of "%PDF-1.4 fake"
	body := `<Envelope><Body><RenderResponse>
		<Result>JVBERi0xLjQgZmFrZQ==</Result>
		<Extension>pdf</Extension>
	</RenderResponse></Body></Envelope>`

	payload, cerr := ParseRender([]byte(body))
	assert.Nil(t, cerr)
	assert.Equal(t, []byte("%PDF-1.4 fake"), payload)
}

func TestParseRenderBadBase64(t *testing.T) {
	body := `<Envelope><Body><RenderResponse>
		<Result>!!!not-base64!!!</Result>
	</RenderResponse></Body></Envelope>`

	_, cerr := ParseRender([]byte(body))
	if assert.NotNil(t, cerr) {
		assert.Equal(t, core.ErrMalformedResponse, cerr.Kind)
	}
}

func TestParseGetPolicies(t *testing.T) {
	body := `<Envelope><Body><GetPoliciesResponse><Policies>
		<Policy>
			<GroupUserName>CORP\analysts</GroupUserName>
			<Roles><Role><Name>Browser</Name></Role><Role><Name>Publisher</Name></Role></Roles>
		</Policy>
	</Policies></GetPoliciesResponse></Body></Envelope>`

	policies, cerr := ParseGetPolicies([]byte(body))
	assert.Nil(t, cerr)
	assert.Len(t, policies, 1)
	assert.Equal(t, `CORP\analysts`, policies[0].Principal)
	assert.Equal(t, []string{"Browser", "Publisher"}, policies[0].Roles)
}

func TestParseListRoles(t *testing.T) {
	body := `<Envelope><Body><ListRolesResponse><Roles>
		<Role><Name>Browser</Name><Description>May view folders and reports</Description></Role>
		<Role><Name>Content Manager</Name></Role>
	</Roles></ListRolesResponse></Body></Envelope>`

	roles, cerr := ParseListRoles([]byte(body))
	assert.Nil(t, cerr)
	assert.Len(t, roles, 2)
	assert.Equal(t, "Browser", roles[0].Name)
	assert.Equal(t, "", roles[1].Description)
}
