package middleware

import (
	"net/http"
	"strconv"

	"peershare/internal/handler/httperr"
	"peershare/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// HeaderSharerUserID identifies the acting user. The gateway owns
// authentication; the backend trusts this header.
const HeaderSharerUserID = "X-Sharer-User-Id"

const ctxSharerIDKey = "sharer_user_id"

var errMissingSharerHeader = errs.New("missing " + HeaderSharerUserID + " header")

// RequireSharerID extracts the acting user id from the X-Sharer-User-Id
// header. A missing or malformed header is a client error.
func RequireSharerID() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderSharerUserID)
		if raw == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, errMissingSharerHeader,
				"Missing "+HeaderSharerUserID+" header")
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, "malformed sharer id"),
				"Invalid "+HeaderSharerUserID+" header")
			return
		}

		c.Set(ctxSharerIDKey, id)
		c.Next()
	}
}

func GetSharerID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxSharerIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
