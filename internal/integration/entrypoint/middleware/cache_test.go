package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newCachedEngine(t *testing.T, ttl time.Duration) (*gin.Engine, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	hits := 0
	engine := gin.New()
	engine.GET("/dashboard/summary", CacheGET(client, ttl), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"caloriesConsumed": 320})
	})
	return engine, &hits
}

func get(engine *gin.Engine) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/dashboard/summary", nil)
	engine.ServeHTTP(recorder, request)
	return recorder
}

func TestCacheGET_SecondRequestIsServedFromCache(t *testing.T) {
	engine, hits := newCachedEngine(t, time.Minute)

	first := get(engine)
	if first.Header().Get("X-Cache") != "MISS" {
		t.Errorf("first request X-Cache = %q, want MISS", first.Header().Get("X-Cache"))
	}
	second := get(engine)
	if second.Header().Get("X-Cache") != "HIT" {
		t.Errorf("second request X-Cache = %q, want HIT", second.Header().Get("X-Cache"))
	}
	if *hits != 1 {
		t.Errorf("handler hits = %d, want 1", *hits)
	}
	if second.Body.String() != first.Body.String() {
		t.Error("cached body differs from original")
	}
}

func TestCacheGET_EntryDoesNotSurviveMidnight(t *testing.T) {
	engine, hits := newCachedEngine(t, time.Hour)

	defer func() { timeNow = time.Now }()
	beforeMidnight := time.Date(2026, 2, 1, 23, 59, 0, 0, time.UTC)
	timeNow = func() time.Time { return beforeMidnight }

	get(engine)
	if response := get(engine); response.Header().Get("X-Cache") != "HIT" {
		t.Fatalf("same-day repeat X-Cache = %q, want HIT", response.Header().Get("X-Cache"))
	}

	// One minute later it is the next day; the entry cached at 23:59 must
	// not answer for it even though its TTL has not expired.
	timeNow = func() time.Time { return beforeMidnight.Add(time.Minute) }
	response := get(engine)
	if response.Header().Get("X-Cache") != "MISS" {
		t.Errorf("next-day request X-Cache = %q, want MISS", response.Header().Get("X-Cache"))
	}
	if *hits != 2 {
		t.Errorf("handler hits = %d, want 2", *hits)
	}
}

func TestCacheGET_NilClientPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/dashboard/summary", CacheGET(nil, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	for i := 0; i < 2; i++ {
		if response := get(engine); response.Header().Get("X-Cache") != "" {
			t.Fatalf("X-Cache = %q, want unset with caching disabled", response.Header().Get("X-Cache"))
		}
	}
}
