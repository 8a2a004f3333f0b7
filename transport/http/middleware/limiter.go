package middleware

import (
	"errors"
	"net"
	"net/http"
	"slotbook/shared/cache"
	"slotbook/shared/constant"
	"slotbook/transport/http/response"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit counts requests per client IP in fixed windows. The window starts with the first
// request and is never extended. When the cache is unreachable requests pass through.
func (a *appMiddleware) RateLimit(next http.Handler) http.Handler {
	if !a.config.App.RateLimiter.Enable {
		return next
	}

	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := a.config.App.RateLimiter.WindowSeconds

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		cacheKey := cache.BuildCacheKey(cacheKeyRateLimit, clientIP(request))

		count, err := a.cache.Increment(request.Context(), cacheKey, windowSecs)
		if err != nil {
			if !errors.Is(err, cache.Nil) {
				log.Warn().Err(err).Str("key", cacheKey).Msg("rate limiter unavailable")
			}

			next.ServeHTTP(writer, request)

			return
		}

		if count > int64(maxReqs) {
			response.WithRequestLimitExceeded(writer)

			return
		}

		writer.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
		writer.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(max(0, int64(maxReqs)-count), 10))
		writer.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(windowSecs))

		next.ServeHTTP(writer, request)
	})
}

func clientIP(request *http.Request) string {
	if forwarded := request.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")

		return strings.TrimSpace(first)
	}

	if realIP := request.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}

	return host
}
