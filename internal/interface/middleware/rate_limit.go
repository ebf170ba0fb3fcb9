package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-ddd-resource-api/pkg/response"
)

// KeyFunc picks the redis counter a request is charged to.
type KeyFunc func(c *gin.Context) string

// AllowFunc returning true lets a request through uncounted.
type AllowFunc func(*gin.Context) bool

func routeOf(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}

func KeyByIP() KeyFunc {
	return func(c *gin.Context) string { return "rl:ip:" + clientIP(c) }
}

// KeyByIPAndPath charges each route separately, using the route pattern so
// /features/1 and /features/2 share a counter.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string { return "rl:path:" + routeOf(c) + ":ip:" + clientIP(c) }
}

// KeyByAccountID limits authenticated callers per account, falling back to IP.
func KeyByAccountID() KeyFunc {
	return func(c *gin.Context) string {
		if aid := c.GetString(CtxAccountID); aid != "" {
			return "rl:account:" + aid
		}
		return "rl:account:anon:ip:" + clientIP(c)
	}
}

// windowScript counts a hit and returns {count, pttl}; the window starts on
// the first hit.
var windowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// RateLimit allows max requests per key per fixed window. Preflight requests
// are never counted. Redis errors fail open.
func RateLimit(rdb *redis.Client, max int, window time.Duration, keyFn KeyFunc, allow AllowFunc) gin.HandlerFunc {
	if rdb == nil || max <= 0 || window <= 0 || keyFn == nil {
		return func(c *gin.Context) { c.Next() }
	}
	limit := strconv.Itoa(max)
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || (allow != nil && allow(c)) {
			c.Next()
			return
		}
		res, err := windowScript.Run(c.Request.Context(), rdb, []string{keyFn(c)}, window.Milliseconds()).Int64Slice()
		if err != nil || len(res) != 2 {
			c.Next()
			return
		}
		count, reset := int(res[0]), resetSeconds(res[1])

		c.Header("X-RateLimit-Limit", limit)
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining(max, count)))
		c.Header("X-RateLimit-Reset", strconv.Itoa(reset))
		if count > max {
			if reset > 0 {
				c.Header("Retry-After", strconv.Itoa(reset))
			}
			response.Abort(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}

func remaining(max, count int) int {
	if count >= max {
		return 0
	}
	return max - count
}

// resetSeconds rounds a PTTL up to whole seconds; missing keys report 0.
func resetSeconds(pttl int64) int {
	if pttl <= 0 {
		return 0
	}
	return int((time.Duration(pttl)*time.Millisecond + time.Second - 1) / time.Second)
}
