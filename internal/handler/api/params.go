package api

import (
	"net/http"
	"strconv"

	"peershare/internal/handler/httperr"
	"peershare/internal/handler/middleware"
	"peershare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageFrom = 0
	defaultPageSize = 20
)

var (
	errBadPagination = errs.New("invalid pagination parameters")
	errNoSharerID    = errs.New("sharer id absent from context")
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "parse path id"),
			"Invalid "+name+" format")
		return 0, false
	}
	return id, true
}

func sharerID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetSharerID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoSharerID,
			"Internal server error")
		return 0, false
	}
	return id, true
}

// pagination reads from/size query parameters. Absent values fall back
// to the defaults; negative from or non-positive size is a client error.
func pagination(c *gin.Context) (from, size int32, ok bool) {
	from, ok = int32Query(c, "from", defaultPageFrom)
	if !ok {
		return 0, 0, false
	}
	size, ok = int32Query(c, "size", defaultPageSize)
	if !ok {
		return 0, 0, false
	}
	if from < 0 || size <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errBadPagination,
			"Invalid pagination parameters")
		return 0, 0, false
	}
	return from, size, true
}

func int32Query(c *gin.Context, name string, fallback int32) (int32, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "parse query "+name),
			"Invalid "+name+" parameter")
		return 0, false
	}
	return int32(v), true
}
