package inspect

import (
	"net/http"

	"github.com/danmuck/telestamp/internal/auth"
	"github.com/danmuck/telestamp/internal/observability"
	"github.com/danmuck/telestamp/internal/protocol/cp56"
	"github.com/danmuck/telestamp/internal/protocol/hexbytes"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"started": s.started,
			"service": s.cfg.Name,
		})
	})
	if s.cfg.Metrics {
		s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := s.router.Group("/v1")
	if s.cfg.AuthToken != "" {
		v1.Use(auth.Middleware(s.tokenValidator()))
	}
	v1.POST("/decode", s.handleDecode)
	v1.POST("/encode", s.handleEncode)
	v1.POST("/parse", s.handleParse)
	v1.POST("/diff", s.handleDiff)
}

func (s *Server) handleDecode(c *gin.Context) {
	var req decodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	buf, err := hexbytes.Bytes(req.Hex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, short := s.decode(buf, req.Offset)
	v := newView(t, s.loc)
	if short {
		v.Error = cp56.ErrShortBuffer.Error()
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) handleEncode(c *gin.Context) {
	var req Fields
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, newView(req.cp56Time(), s.loc))
}

func (s *Server) handleParse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	format := req.Format
	if format == "" {
		format = s.cfg.DefaultFormat
	}
	t, err := cp56.Scan(req.Text, format)
	if s.cfg.Metrics {
		observability.RecordParse(err)
	}
	v := newView(t, s.loc)
	if err != nil {
		v.Error = err.Error()
		s.logger.Debug().Err(err).Str("text", req.Text).Str("format", format).Msg("parse aborted")
	}
	c.JSON(http.StatusOK, v)
}

func (s *Server) handleDiff(c *gin.Context) {
	var req diffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := hexbytes.Bytes(req.A)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a: " + err.Error()})
		return
	}
	b, err := hexbytes.Bytes(req.B)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "b: " + err.Error()})
		return
	}
	ta, _ := s.decode(a, 0)
	tb, _ := s.decode(b, 0)
	c.JSON(http.StatusOK, diffResponse{
		DeltaMS: cp56.Difference(ta, tb),
		A:       newView(ta, s.loc),
		B:       newView(tb, s.loc),
	})
}

func (s *Server) decode(buf []byte, offset int) (cp56.Time, bool) {
	short := !cp56.Fits(buf, offset)
	t := cp56.Decode(buf, offset)
	if s.cfg.Metrics {
		observability.RecordDecode(t, short)
	}
	return t, short
}

// tokenValidator checks the shared token and logs rejected attempts.
func (s *Server) tokenValidator() auth.Validator {
	static := auth.StaticToken{Token: s.cfg.AuthToken}
	return auth.FuncValidator(func(token string) error {
		if err := static.Validate(token); err != nil {
			s.logger.Warn().Msg("rejected bearer token")
			return err
		}
		return nil
	})
}
