package middleware

import (
	"fieldservice/shared"
	"fieldservice/shared/constant"
	"fieldservice/transport/http/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownAgent      = "unknown"
)

// RateLimit caps the requests one client may send in a fixed window. A client is its originating
// IP together with its user agent, so dispatch terminals behind one office proxy are counted apart.
// The window opens with the client's first request. When Redis is unavailable requests pass.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limits := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		if !limits.Enable {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			counterKey := shared.BuildCacheKey(cacheKeyRateLimit, originIP(r), userAgent(r))

			sent, err := a.cache.Increment(ctx, counterKey)
			if err != nil {
				log.Warn().Err(err).Str("counterKey", counterKey).Msg("rate limiter unavailable, request not counted")
				next.ServeHTTP(w, r)

				return
			}

			if sent == 1 {
				if err = a.cache.Expire(ctx, counterKey, limits.WindowSeconds); err != nil {
					log.Warn().Err(err).Str("counterKey", counterKey).Msg("failed to open rate limiter window")
				}
			}

			if sent > int64(limits.MaxRequests) {
				response.WithRequestLimitExceeded(w)

				return
			}

			header := w.Header()
			header.Set(constant.RequestHeaderRateLimit, strconv.Itoa(limits.MaxRequests))
			header.Set(constant.RequestHeaderRateLimitRemaining, strconv.FormatInt(int64(limits.MaxRequests)-sent, 10))
			header.Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limits.WindowSeconds))

			next.ServeHTTP(w, r)
		})
	}
}

func userAgent(r *http.Request) string {
	if agent := r.Header.Get(constant.RequestHeaderUserAgent); agent != "" {
		return agent
	}

	return unknownAgent
}

// originIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the socket peer.
func originIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get(constant.RequestHeaderRealIP)); realIP != "" {
		return realIP
	}

	return r.RemoteAddr
}
