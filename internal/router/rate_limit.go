package router

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/livraria-next/internal/http/response"
	"github.com/livraria-next/internal/i18n"
	"github.com/livraria-next/internal/logger"
)

// RateLimitKeyFunc 生成限流键的函数
type RateLimitKeyFunc func(c *gin.Context) string

// RateLimitRule 限流规则
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	MessageKey    string
}

// rateLimitScript 固定窗口计数脚本,首次命中时设置过期
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
    redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
return {current, ttl}
`)

// RateLimitMiddleware 基于 Redis 固定窗口的限流中间件
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || rule.MaxRequests <= 0 || rule.WindowSeconds <= 0 {
			c.Next()
			return
		}

		key := ""
		if keyFunc != nil {
			key = strings.TrimSpace(keyFunc(c))
		}
		if key == "" {
			key = c.ClientIP()
		}
		redisKey := rule.Prefix + ":" + key

		result, err := rateLimitScript.Run(c.Request.Context(), client, []string{redisKey}, rule.WindowSeconds).Result()
		if err != nil {
			logger.Errorw("rate_limit_script_failed", "key", redisKey, "error", err)
			msg := i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable")
			response.Error(c, response.CodeInternal, msg)
			c.Abort()
			return
		}

		values, ok := result.([]interface{})
		if !ok || len(values) < 2 {
			logger.Errorw("rate_limit_script_invalid_result", "key", redisKey)
			msg := i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable")
			response.Error(c, response.CodeInternal, msg)
			c.Abort()
			return
		}

		current := toInt64(values[0])
		if current > int64(rule.MaxRequests) {
			messageKey := rule.MessageKey
			if messageKey == "" {
				messageKey = "error.rate_limited"
			}
			msg := i18n.T(i18n.ResolveLocale(c), messageKey)
			response.Error(c, response.CodeTooManyRequests, msg)
			c.Abort()
			return
		}

		c.Next()
	}
}

// KeyByIP 以客户端 IP 作为限流键
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 以 IP 加 JSON 请求体字段组合作为限流键
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := readJSONField(c, field)
		if value == "" {
			return c.ClientIP()
		}
		return c.ClientIP() + ":" + strings.ToLower(value)
	}
}

// readJSONField 读取请求体中的字符串字段并恢复请求体
func readJSONField(c *gin.Context, field string) string {
	if c.Request == nil || c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))
	if len(body) == 0 {
		return ""
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if value, ok := payload[field].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

func toInt64(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case string:
		var parsed int64
		for _, ch := range v {
			if ch < '0' || ch > '9' {
				return 0
			}
			parsed = parsed*10 + int64(ch-'0')
		}
		return parsed
	default:
		return 0
	}
}
