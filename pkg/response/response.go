package response

import (
	"errors"
	"net/http"

	pkgErrors "crawler-console/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data inside the standard envelope with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   messageSuccess,
		Data:      data,
	})
}

// Error writes err. HTTPErrors keep their code and status, anything else is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

// PanicError writes the response for a recovered panic.
func PanicError(c *gin.Context, _ any) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}
