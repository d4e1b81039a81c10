package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Status: StatusSuccess,
		Data:   data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Reply sends 200 JSON carrying a coach reply.
func Reply(c *gin.Context, reply string, data any) {
	c.JSON(http.StatusOK, Resp{
		Status: StatusSuccess,
		Reply:  reply,
		Data:   data,
	})
}

// Error sends a 400 with the error text as message.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		Status:  StatusError,
		Message: err.Error(),
	})
}

// ErrorWithStatus sends an error envelope with a user-safe message.
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, Resp{
		Status:  StatusError,
		Message: message,
	})
}

// NotFound sends 404 with the error text as message.
func NotFound(c *gin.Context, err error) {
	ErrorWithStatus(c, http.StatusNotFound, err.Error())
}

// InternalError sends 500 internal server error. The cause is never exposed.
func InternalError(c *gin.Context, err error) {
	ErrorWithStatus(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	ErrorWithStatus(c, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	ErrorWithStatus(c, http.StatusForbidden, "Forbidden")
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	ErrorWithStatus(c, http.StatusTooManyRequests, "Too many requests, please slow down")
}
