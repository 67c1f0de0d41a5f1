package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tiffanybuu/cs466-project/internal/logger"
)

// Codes of the errors a client can get back.
const (
	CodeMissingSequence = "MissingSequenceError"
	CodeInvalidMinLoop  = "InvalidMinLoopError"
	CodeInvalidSequence = "InvalidSequenceError"
	CodeSequenceTooLong = "SequenceTooLongError"
	CodeInternal        = "InternalError"
)

// RequestError is an error reported straight back to the client.
type RequestError struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *RequestError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	errMissingSequence = &RequestError{
		Code:    CodeMissingSequence,
		Message: `Error: No RNA strand specified for query parameter "rna"`,
		Status:  http.StatusBadRequest,
	}

	errInvalidMinLoop = &RequestError{
		Code:    CodeInvalidMinLoop,
		Message: `Error: Minimum loop length parameter "minloop" must be a non-negative integer (0 by default)`,
		Status:  http.StatusBadRequest,
	}

	errInvalidSequence = &RequestError{
		Code:    CodeInvalidSequence,
		Message: `Error: RNA strand in query parameter "rna" must only contain letters`,
		Status:  http.StatusBadRequest,
	}
)

func errSequenceTooLong(limit int) *RequestError {
	return &RequestError{
		Code:    CodeSequenceTooLong,
		Message: "Error: RNA strand is longer than the " + strconv.Itoa(limit) + " bases this server folds",
		Status:  http.StatusBadRequest,
	}
}

// abort writes e as the response and stops the handler chain.
func abort(c *gin.Context, e *RequestError) {
	log := logger.FromContext(c.Request.Context())
	if e.Status >= http.StatusInternalServerError {
		log.Error("request failed", "error", e.Code, "message", e.Message)
	} else {
		log.Debug("request rejected", "error", e.Code, "message", e.Message)
	}

	c.AbortWithStatusJSON(e.Status, e)
}
