package helper

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"usertasks/internal/core/domain"
)

var statusByKind = map[domain.Kind]int{
	domain.KindInvalid:  http.StatusBadRequest,
	domain.KindConflict: http.StatusBadRequest,
	domain.KindNotFound: http.StatusNotFound,
}

// StatusFor maps an error to its response status, 500 for anything that is
// not a *domain.Error of a known kind.
func StatusFor(err error) int {
	if status, ok := statusByKind[domain.KindOf(err)]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// SendError writes the client-facing message of err as plain text. Errors
// without one are attached to the context for the access log and answered
// with a generic message.
func SendError(c *gin.Context, err error) {
	var domainErr *domain.Error

	status := StatusFor(err)

	if status != http.StatusInternalServerError && errors.As(err, &domainErr) {
		c.String(status, domainErr.Message)
		return
	}

	_ = c.Error(err)
	c.String(http.StatusInternalServerError, domain.MsgUnexpected)
}

func SendSuccess(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}
