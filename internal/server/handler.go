package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tiffanybuu/cs466-project/internal/logger"
	"github.com/tiffanybuu/cs466-project/internal/nussinov"
)

func (s *Server) home(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`<a href="/nussinov">/nussinov</a>`))
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// fold is GET /nussinov?rna=GCGC&minloop=0. It responds with the score
// matrix, the best score, and one structure reaching it.
func (s *Server) fold(c *gin.Context) {
	seq, opts, reqErr := s.parseFoldRequest(c)
	if reqErr != nil {
		abort(c, reqErr)
		return
	}

	start := time.Now()
	result, err := nussinov.Fold(seq, opts)
	if err != nil {
		abort(c, &RequestError{Code: CodeInternal, Message: err.Error(), Status: http.StatusInternalServerError})
		return
	}

	elapsed := time.Since(start)
	s.metrics.foldDuration.Observe(elapsed.Seconds())
	s.metrics.foldLength.Observe(float64(len(seq)))
	logger.FromContext(c.Request.Context()).Debug("folded",
		"length", len(seq),
		"min_loop", opts.MinLoop,
		"max_score", result.MaxScore,
		"duration", elapsed,
	)

	c.JSON(http.StatusOK, result)
}
