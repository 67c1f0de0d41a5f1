package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tiffanybuu/cs466-project/internal/nussinov"
)

// foldRequest is the query of a fold request, before it's parsed.
type foldRequest struct {
	Sequence string `validate:"required,alpha"`
	MinLoop  string `validate:"digits"`
	Trace    bool
}

// newValidator returns a validator that knows the "digits" tag: a
// non-empty string of ASCII digits.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		for i := 0; i < len(s); i++ {
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
		return true
	}); err != nil {
		panic(err)
	}
	return v
}

// query returns the first of names present in the request's query.
func query(c *gin.Context, names ...string) (string, bool) {
	for _, name := range names {
		if v, ok := c.GetQuery(name); ok {
			return v, true
		}
	}
	return "", false
}

// parseFoldRequest reads the strand and fold options from the query.
// "rna" and "minloop" may also be sent as "sequence" and "minLoop".
func (s *Server) parseFoldRequest(c *gin.Context) (string, nussinov.Options, *RequestError) {
	req := foldRequest{MinLoop: strconv.Itoa(s.conf.Fold.MinLoop)}
	req.Sequence, _ = query(c, "rna", "sequence")
	if minLoop, ok := query(c, "minloop", "minLoop"); ok {
		req.MinLoop = minLoop
	}
	req.Trace, _ = strconv.ParseBool(c.Query("trace"))

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return "", nussinov.Options{}, &RequestError{Code: CodeInternal, Message: err.Error(), Status: http.StatusInternalServerError}
		}

		switch fe := verrs[0]; {
		case fe.StructField() == "Sequence" && fe.Tag() == "required":
			return "", nussinov.Options{}, errMissingSequence
		case fe.StructField() == "Sequence":
			return "", nussinov.Options{}, errInvalidSequence
		default:
			return "", nussinov.Options{}, errInvalidMinLoop
		}
	}

	if limit := s.conf.Server.MaxLength; limit > 0 && len(req.Sequence) > limit {
		return "", nussinov.Options{}, errSequenceTooLong(limit)
	}

	minLoop, err := strconv.Atoi(req.MinLoop)
	if err != nil {
		// all digits, but too large for an int
		return "", nussinov.Options{}, errInvalidMinLoop
	}

	return req.Sequence, nussinov.Options{MinLoop: minLoop, Trace: req.Trace}, nil
}
