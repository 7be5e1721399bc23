package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
)

type APIError struct {
	Message string                     `json:"message"`
	Code    string                     `json:"code,omitempty"`
	Fields  []string                   `json:"fields,omitempty"`
	Errors  domainagg.ValidationErrors `json:"errors,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
