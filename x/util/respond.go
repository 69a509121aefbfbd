package util

import (
	"github.com/labstack/echo/v4"

	"github.com/reportgate/reportgate/core"
)

// RespondError maps a classified error onto the HTTP response. Anything
// unclassified that leaked this far is reported as an internal error.
func RespondError(c echo.Context, err error) error {
	cerr := core.Classified(err)
	return c.JSON(cerr.HTTPStatus, core.ResponseBase[*core.Error]{
		Status:  "error",
		Content: cerr,
		Error:   cerr.Message,
	})
}
