// Package httperr carries structured error responses from handlers to the
// error-handling middleware via the gin error stack.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope written to clients. Status travels with the
// envelope so the middleware can replay it, but is never serialized. Detail
// holds optional machine-readable context such as field validation results.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError records err on the context for logging and writes resp as
// the response body. msg is the client-facing message; the underlying err is
// kept on the gin error stack and never leaks to the client.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
