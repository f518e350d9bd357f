package middleware

import (
	"strings"

	"github.com/AdhityaRamadhanus/fasthttpcors"
	"github.com/valyala/fasthttp"
)

var (
	corsAllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsAllowHeaders = []string{"Authorization", "Content-Type", "X-Request-ID"}
)

const corsMaxAge = 600

// CORS allows credentialed requests from the listed origins. "*" allows any
// origin. OPTIONS requests are answered here and never reach the router.
func CORS(origins []string) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	allowed := make([]string, 0, len(origins))
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}

	handler := fasthttpcors.NewCorsHandler(fasthttpcors.Options{
		AllowedOrigins:   allowed,
		AllowedMethods:   corsAllowMethods,
		AllowedHeaders:   corsAllowHeaders,
		AllowCredentials: true,
		AllowMaxAge:      corsMaxAge,
	})

	return handler.CorsMiddleware
}
