package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/user-item-service/internal/apperr"
)

// pathID parses the :id path parameter. A non-numeric id can never match
// a row, so it is reported as not found rather than as a syntax error.
func pathID(c echo.Context, resource string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.New(apperr.NotFound, resource+" not found")
	}
	return id, nil
}
