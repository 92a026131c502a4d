package matchresponse

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/scorebook/internal/scoring"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type jsonSuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type jsonErrorResponse struct {
	Status  string      `json:"status"` // "error" or "fail"
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Errors  interface{} `json:"errors,omitempty"`
}

type jsonPaginatedResponse struct {
	Status     string      `json:"status"`
	Data       interface{} `json:"data"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
	HasNextPage bool  `json:"has_next_page"`
	HasPrevPage bool  `json:"has_prev_page"`
}

// ErrorResponse aborts the request with the error envelope.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail"
	}
	c.AbortWithStatusJSON(statusCode, jsonErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// StatusFor maps the scoring error taxonomy onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, scoring.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, scoring.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err with the status StatusFor picks. Server-side failures
// hide their cause from the client.
func FromError(c *gin.Context, err error) {
	code := StatusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "The record store is unavailable. Please retry."
	}
	ErrorResponse(c, code, msg)
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	formatted := make(map[string]string)
	for _, err := range errs {
		key := strings.ToLower(err.Field())
		var msg string
		switch err.Tag() {
		case "required":
			msg = fmt.Sprintf("The %s field is required.", err.Field())
		case "min", "gte":
			msg = fmt.Sprintf("The %s field must be at least %s.", err.Field(), err.Param())
		case "max", "lte":
			msg = fmt.Sprintf("The %s field must not exceed %s.", err.Field(), err.Param())
		case "oneof":
			msg = fmt.Sprintf("The %s field must be one of: %s.", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
		case "notblank":
			msg = fmt.Sprintf("The %s field must not be blank.", err.Field())
		case "nefield":
			msg = fmt.Sprintf("The %s field must differ from %s.", err.Field(), err.Param())
		default:
			msg = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", err.Field(), err.Tag())
		}
		formatted[key] = msg
	}
	return formatted
}

// ValidationErrorResponse reports a binding failure from ShouldBindJSON and
// friends.
func ValidationErrorResponse(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		c.AbortWithStatusJSON(http.StatusBadRequest, jsonErrorResponse{
			Status:  "error",
			Message: "Validation failed. Please check your input.",
			Code:    http.StatusBadRequest,
			Errors:  formatValidationErrors(ve),
		})
		return
	}
	ErrorResponse(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
}

// SuccessResponse wraps responseData in the success envelope. A gin.H with a
// string "message" key has that key lifted to the top level.
func SuccessResponse(c *gin.Context, statusCode int, responseData interface{}) {
	payload := jsonSuccessResponse{Status: "success"}

	gh, ok := responseData.(gin.H)
	if !ok {
		payload.Data = responseData
		c.JSON(statusCode, payload)
		return
	}
	msg, isStr := gh["message"].(string)
	if !isStr {
		payload.Data = responseData
		c.JSON(statusCode, payload)
		return
	}
	payload.Message = msg
	rest := make(gin.H, len(gh))
	for k, v := range gh {
		if k != "message" {
			rest[k] = v
		}
	}
	if len(rest) > 0 {
		payload.Data = rest
	}
	c.JSON(statusCode, payload)
}

// PaginatedResponse sends one page of items with paging metadata.
func PaginatedResponse(c *gin.Context, statusCode int, items interface{}, currentPage, pageSize int, totalItems int64) {
	if pageSize <= 0 {
		pageSize = 10
	}
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}

	c.JSON(statusCode, jsonPaginatedResponse{
		Status: "success",
		Data:   items,
		Pagination: pagination{
			TotalItems:  totalItems,
			TotalPages:  totalPages,
			CurrentPage: currentPage,
			PageSize:    pageSize,
			HasNextPage: currentPage < totalPages,
			HasPrevPage: currentPage > 1 && currentPage <= totalPages,
		},
	})
}
