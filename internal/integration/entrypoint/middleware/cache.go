// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "wlc:cache:"

// timeNow is swapped in tests to cross a day boundary.
var timeNow = time.Now

// cachedResponse is the serialized form of a cached GET response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// CacheGET serves successful GET responses from Redis for the given TTL.
// A nil client disables caching entirely; Redis failures fall through to the
// handler, never to the user.
func CacheGET(client *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		// The cached routes all serve today-only data, so the UTC date is
		// part of the key: an entry cached before midnight is never served
		// for the next day, whatever the TTL.
		cacheKey := cacheKeyPrefix + timeNow().UTC().Format("2006-01-02") + ":" + c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			cacheKey += "?" + c.Request.URL.RawQuery
		}

		ctx := c.Request.Context()
		if raw, err := client.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				c.Header("X-Cache", "HIT")
				c.Data(cached.Status, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
		} else if err != redis.Nil {
			slog.Warn("cache read failed, bypassing", "key", cacheKey, "error", err)
		}

		c.Header("X-Cache", "MISS")
		writer := &bodyCaptureWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() != http.StatusOK {
			return
		}
		raw, err := json.Marshal(cachedResponse{
			Status:      c.Writer.Status(),
			ContentType: c.Writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := client.Set(ctx, cacheKey, raw, ttl).Err(); err != nil {
			slog.Warn("cache write failed", "key", cacheKey, "error", err)
		}
	}
}

// InvalidateOnWrite drops all cached GET responses after any successful
// mutating request, since every write can change the dashboard aggregates.
func InvalidateOnWrite(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if client == nil || c.Request.Method == http.MethodGet {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		ctx := c.Request.Context()
		var cursor uint64
		for {
			keys, next, err := client.Scan(ctx, cursor, cacheKeyPrefix+"*", 100).Result()
			if err != nil {
				slog.Warn("cache invalidation scan failed", "error", err)
				return
			}
			if len(keys) > 0 {
				if err := client.Del(ctx, keys...).Err(); err != nil {
					slog.Warn("cache invalidation delete failed", "error", err)
					return
				}
			}
			cursor = next
			if cursor == 0 {
				break
			}
		}
	}
}
