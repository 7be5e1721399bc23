package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainagg "github.com/crumbs/restaurant-service/internal/domain/aggregates"
)

// StatusFor maps an aggregate error code onto an HTTP status.
func StatusFor(code domainagg.ErrorCode) int {
	switch code {
	case domainagg.CodeValidation:
		return http.StatusBadRequest
	case domainagg.CodeNotFound:
		return http.StatusNotFound
	case domainagg.CodeDuplicateField, domainagg.CodeConflict:
		return http.StatusConflict
	case domainagg.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case domainagg.CodeRetryable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError writes err using its aggregate code. Duplicate and validation
// failures also carry the offending fields.
func RespondDomainError(c *gin.Context, err error) {
	code := domainagg.CodeOf(err)
	if code == "" {
		code = domainagg.CodeInternal
	}
	status := StatusFor(code)

	apiErr := APIError{Message: err.Error(), Code: string(code)}
	if status == http.StatusInternalServerError {
		apiErr.Message = "internal error"
	}
	for _, f := range domainagg.DuplicateFields(err) {
		apiErr.Fields = append(apiErr.Fields, string(f))
	}
	if verrs := domainagg.FieldErrors(err); len(verrs) > 0 {
		apiErr.Errors = verrs
		for _, fe := range verrs {
			apiErr.Fields = append(apiErr.Fields, fe.Field)
		}
	}
	c.JSON(status, ErrorEnvelope{Error: apiErr})
}
