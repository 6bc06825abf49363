package middleware

import (
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSOptions holds the cross-origin settings, as comma-separated lists.
type CORSOptions struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
	MaxAge       time.Duration
}

// defaultCORSMaxAge is how long browsers may cache a preflight answer.
const defaultCORSMaxAge = 24 * time.Hour

// CORS returns middleware that adds cross-origin headers to responses for
// browser requests and answers OPTIONS preflight requests with 204 without
// running handlers. An empty or "*" origin allows every origin.
func CORS(opts CORSOptions) gin.HandlerFunc {
	return cors.New(corsConfig(opts))
}

func corsConfig(opts CORSOptions) cors.Config {
	cfg := cors.Config{
		AllowMethods:  splitList(opts.AllowMethods),
		AllowHeaders:  splitList(opts.AllowHeaders),
		ExposeHeaders: []string{HeaderRequestID, HeaderCorrelationID},
		MaxAge:        opts.MaxAge,
	}

	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultCORSMaxAge
	}

	origins := splitList(opts.AllowOrigin)
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cfg
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(s string) []string {
	var out []string

	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
