package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	apperrors "github.com/alurafood/payments/internal/utils/errors"
	"github.com/alurafood/payments/internal/utils/response"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

const (
	// IdempotencyKeyHeader is the header for idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotentReplayHeader marks responses served from the idempotency cache.
	IdempotentReplayHeader = "Idempotent-Replayed"
	// idempotencyKeyPrefix is the Redis key prefix.
	idempotencyKeyPrefix = "payments:idempotency:"
	// defaultIdempotencyTTL is the default TTL for idempotency keys.
	defaultIdempotencyTTL = 24 * time.Hour
	idempotencyLockTTL    = 30 * time.Second
)

// IdempotencyConfig holds idempotency middleware configuration.
type IdempotencyConfig struct {
	// TTL is the time to live for idempotency keys.
	TTL time.Duration
	// Methods are the HTTP methods to apply idempotency check.
	// Default: POST, PUT, PATCH
	Methods []string
	// OnReplay is called whenever a cached response is served.
	OnReplay func()
}

// DefaultIdempotencyConfig returns the default idempotency configuration.
func DefaultIdempotencyConfig() IdempotencyConfig {
	return IdempotencyConfig{
		TTL:     defaultIdempotencyTTL,
		Methods: []string{http.MethodPost, http.MethodPut, http.MethodPatch},
	}
}

type idempotencyResponse struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
	BodyHash   string            `json:"body_hash"`
}

// idempotencyResponseWriter wraps gin.ResponseWriter to capture the response.
type idempotencyResponseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *idempotencyResponseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *idempotencyResponseWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency returns a middleware that replays the stored response for a
// repeated Idempotency-Key. A nil client disables it.
func Idempotency(redis goredis.UniversalClient, cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.TTL == 0 {
		cfg.TTL = defaultIdempotencyTTL
	}
	if len(cfg.Methods) == 0 {
		cfg.Methods = DefaultIdempotencyConfig().Methods
	}

	methodSet := make(map[string]bool, len(cfg.Methods))
	for _, m := range cfg.Methods {
		methodSet[m] = true
	}

	return func(c *gin.Context) {
		if redis == nil || !methodSet[c.Request.Method] {
			c.Next()
			return
		}

		idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
		if idempotencyKey == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := generateIdempotencyKey(c, idempotencyKey)
		bodyHash := bodyHashKey(c)

		if cached, err := getCachedResponse(ctx, redis, cacheKey); err == nil && cached != nil {
			replayCachedResponse(c, cached, bodyHash, cfg.OnReplay)
			return
		}

		lockKey := cacheKey + ":lock"
		locked, err := redis.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
		if err != nil {
			// Redis unavailable: serve the request without replay protection.
			c.Next()
			return
		}
		if !locked {
			response.Error(c, apperrors.Conflict("a request with this idempotency key is already being processed"))
			return
		}
		defer redis.Del(context.WithoutCancel(ctx), lockKey)

		// The previous holder may have stored its response and released the
		// lock between the lookup above and SetNX.
		if cached, err := getCachedResponse(ctx, redis, cacheKey); err == nil && cached != nil {
			replayCachedResponse(c, cached, bodyHash, cfg.OnReplay)
			return
		}

		respWriter := &idempotencyResponseWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBuffer(nil),
		}
		c.Writer = respWriter

		c.Next()

		// Server errors are retryable, so they are not replayed.
		if status := c.Writer.Status(); status >= 200 && status < 500 {
			headers := make(map[string]string)
			for k := range c.Writer.Header() {
				headers[k] = c.Writer.Header().Get(k)
			}

			_ = cacheResponse(context.WithoutCancel(ctx), redis, cacheKey, &idempotencyResponse{
				StatusCode: status,
				Headers:    headers,
				Body:       respWriter.body.Bytes(),
				BodyHash:   bodyHash,
			}, cfg.TTL)
		}
	}
}

// replayCachedResponse writes a stored response, or a 409 when the stored
// response belongs to a different request body.
func replayCachedResponse(c *gin.Context, cached *idempotencyResponse, bodyHash string, onReplay func()) {
	if cached.BodyHash != bodyHash {
		response.Error(c, apperrors.Conflict("idempotency key reused with a different request body"))
		return
	}

	for k, v := range cached.Headers {
		c.Header(k, v)
	}
	c.Header(IdempotentReplayHeader, "true")
	c.Data(cached.StatusCode, cached.Headers["Content-Type"], cached.Body)
	c.Abort()
	if onReplay != nil {
		onReplay()
	}
}

// generateIdempotencyKey scopes the client key to the method and concrete path.
func generateIdempotencyKey(c *gin.Context, idempotencyKey string) string {
	hash := sha256.Sum256([]byte(c.Request.Method + ":" + c.Request.URL.Path + ":" + idempotencyKey))
	return idempotencyKeyPrefix + hex.EncodeToString(hash[:])
}

func getCachedResponse(ctx context.Context, redis goredis.UniversalClient, key string) (*idempotencyResponse, error) {
	data, err := redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var resp idempotencyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func cacheResponse(ctx context.Context, redis goredis.UniversalClient, key string, resp *idempotencyResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return redis.Set(ctx, key, data, ttl).Err()
}

// bodyHashKey hashes the request body and restores it for the handler.
func bodyHashKey(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	hash := sha256.Sum256(body)
	return hex.EncodeToString(hash[:])
}
