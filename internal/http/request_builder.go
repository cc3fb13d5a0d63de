package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/food-order-service/internal/circuitbreaker"
	"github.com/guttosm/food-order-service/internal/domain/dto"
	"github.com/guttosm/food-order-service/internal/messages"
	"github.com/guttosm/food-order-service/internal/middleware"
	"github.com/guttosm/food-order-service/internal/service"
)

// Envelope pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

func getSuccessResponse() *dto.SuccessResponse {
	if resp, ok := successResponsePool.Get().(*dto.SuccessResponse); ok {
		return resp
	}
	return &dto.SuccessResponse{}
}

func putSuccessResponse(resp *dto.SuccessResponse) {
	*resp = dto.SuccessResponse{}
	successResponsePool.Put(resp)
}

func getErrorResponse() *dto.ErrorResponse {
	if resp, ok := errorResponsePool.Get().(*dto.ErrorResponse); ok {
		return resp
	}
	return &dto.ErrorResponse{}
}

func putErrorResponse(resp *dto.ErrorResponse) {
	*resp = dto.ErrorResponse{}
	errorResponsePool.Put(resp)
}

// ResponseBuilder writes the success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data in the success envelope. gin serializes synchronously, so the
// pooled envelope can be returned right after.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := getSuccessResponse()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	b.c.JSON(statusCode, resp)
	putSuccessResponse(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error sends the error envelope with the text of messageKey and records err on the
// context for the error handler to log.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	b.ErrorWithDetails(statusCode, messages.Get(messageKey), nil, err)
}

// ErrorWithMessage sends the error envelope with a literal message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.ErrorWithDetails(statusCode, message, nil, err)
}

// ErrorWithDetails sends the error envelope with per-field details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, message string, details map[string]string, err error) {
	resp := getErrorResponse()
	resp.Error = dto.ErrCodeFromStatus(statusCode)
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now().UTC()

	if err != nil {
		_ = b.c.Error(err)
	}
	b.c.AbortWithStatusJSON(statusCode, resp)
	putErrorResponse(resp)
}

// ServiceError maps an error returned by the ordering service to a response.
func (b *ResponseBuilder) ServiceError(err error) {
	var validationErr *dto.ValidationError
	switch {
	case errors.As(err, &validationErr):
		b.ErrorWithDetails(http.StatusBadRequest, messages.Get(messages.ErrKeyValidation),
			validationDetails(validationErr), err)
	case errors.Is(err, service.ErrInvalidSpicyLevel):
		b.ErrorWithDetails(http.StatusBadRequest, messages.Get(messages.ErrKeyInvalidSpicyLevel),
			map[string]string{"level": err.Error()}, err)
	case errors.Is(err, service.ErrSessionNotFound):
		b.Error(http.StatusNotFound, messages.ErrKeySessionNotFound, err)
	case errors.Is(err, service.ErrItemNotFound):
		b.Error(http.StatusNotFound, messages.ErrKeyItemNotFound, err)
	case errors.Is(err, service.ErrInvalidToken):
		b.Error(http.StatusUnauthorized, messages.ErrKeyInvalidToken, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen):
		b.Error(http.StatusServiceUnavailable, messages.ErrKeyServiceUnavailable, err)
	default:
		b.Error(http.StatusInternalServerError, messages.ErrKeyInternalError, err)
	}
}

func validationDetails(err *dto.ValidationError) map[string]string {
	details := map[string]string{"field": err.Field, "reason": err.Message}
	if err.ID != "" {
		details["id"] = err.ID
	}
	return details
}

// Validator is implemented by request bodies that check themselves.
type Validator interface {
	Validate() error
}

// BuildRequest binds the JSON body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// BuildRequestAndValidate binds the JSON body and runs Validate when T implements it.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if validator, ok := any(req).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// bindError responds to a failed BuildRequestAndValidate.
func (b *ResponseBuilder) bindError(err error) {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		b.ErrorWithDetails(http.StatusBadRequest, messages.Get(messages.ErrKeyValidation),
			validationDetails(validationErr), err)
		return
	}
	b.Error(http.StatusBadRequest, messages.ErrKeyInvalidRequestBody, err)
}
