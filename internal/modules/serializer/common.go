package serializer

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/izabelforte/ProjetoPCRH/internal/pkg/apperrors"
)

// Response
type Response struct {
	Code   int               `json:"code"`
	Data   interface{}       `json:"data,omitempty"`
	Msg    string            `json:"msg"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// Err
func Err(errCode int, msg string, err error) Response {
	res := Response{
		Code: errCode,
		Msg:  msg,
	}
	// development mode, show error detail
	if err != nil && gin.Mode() != gin.ReleaseMode {
		res.Error = fmt.Sprintf("%+v", err)
	}
	return res
}

// DBErr
func DBErr(msg string, err error) Response {
	if msg == "" {
		msg = "database error"
	}
	return Err(http.StatusInternalServerError, msg, err)
}

// ParamErr
func ParamErr(msg string, err error) Response {
	if msg == "" {
		msg = "parameter error"
	}
	return Err(http.StatusBadRequest, msg, err)
}

// AuthErr
func AuthErr(msg string) Response {
	if msg == "" {
		msg = "authentication error"
	}
	return Err(http.StatusUnauthorized, msg, nil)
}

// NotFoundErr
func NotFoundErr(msg string) Response {
	if msg == "" {
		msg = "not found"
	}
	return Err(http.StatusNotFound, msg, nil)
}

// ConflictErr
func ConflictErr(err error) Response {
	return Err(http.StatusConflict, "could not save, record changed", err)
}

// ValidationErr
func ValidationErr(ve *apperrors.ValidationError) Response {
	res := Err(http.StatusUnprocessableEntity, "validation failed", nil)
	res.Fields = ve.Fields
	return res
}

// WriteErr maps a service error onto the response taxonomy and writes it.
// NotFound -> 404, Conflict -> 409, ValidationError -> 422, invalid
// credentials -> 401, everything else -> 500.
func WriteErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, NotFoundErr(""))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, ConflictErr(err))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, AuthErr(apperrors.ErrInvalidCredentials.Error()))
	default:
		if ve, ok := apperrors.AsValidation(err); ok {
			c.JSON(http.StatusUnprocessableEntity, ValidationErr(ve))
			return
		}
		c.JSON(http.StatusInternalServerError, DBErr("", err))
	}
}
