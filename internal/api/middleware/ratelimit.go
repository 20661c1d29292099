package middleware

import (
	"fmt"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"golang.org/x/time/rate"
)

// RateLimit rejects requests once the process-wide token bucket is empty,
// shielding the metered model API behind it.
func RateLimit(limiter *rate.Limiter) restful.FilterFunction {
	return func(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
		if !limiter.Allow() {
			resp.AddHeader("Retry-After", "1")
			HandleError(resp, ErrRateLimited, http.StatusTooManyRequests)
			return
		}

		resp.AddHeader("X-RateLimit-Limit", fmt.Sprintf("%d", int(limiter.Limit())))
		resp.AddHeader("X-RateLimit-Remaining", fmt.Sprintf("%d", int(limiter.Tokens())))

		chain.ProcessFilter(req, resp)
	}
}
