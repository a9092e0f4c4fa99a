package main

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/olgasafonova/clabe-mcp-server/metrics"
)

// SecurityConfig configures the HTTP security middleware
type SecurityConfig struct {
	// RateLimit is the number of requests per minute per client IP. 0 disables.
	RateLimit int

	// MaxBodySize caps request bodies in bytes. 0 disables.
	MaxBodySize int64
}

type bucket struct {
	tokens   int
	lastFill time.Time
	lastSeen time.Time
}

// RateLimiter is a per-IP token bucket.
type RateLimiter struct {
	rate     int
	interval time.Duration

	mu      sync.Mutex
	buckets map[string]*bucket

	stopCh    chan struct{}
	closeOnce sync.Once
}

// NewRateLimiter allows rate requests per interval for each IP.
func NewRateLimiter(rate int, interval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		rate:     rate,
		interval: interval,
		buckets:  make(map[string]*bucket),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether a request from ip may proceed and consumes a token if so.
func (rl *RateLimiter) Allow(ip string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		b = &bucket{tokens: rl.rate, lastFill: now}
		rl.buckets[ip] = b
	}
	b.lastSeen = now

	if elapsed := now.Sub(b.lastFill); elapsed >= rl.interval {
		b.tokens = rl.rate
		b.lastFill = now
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stopCh) })
}

func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.idleAfter())
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, b := range rl.buckets {
				if now.Sub(b.lastSeen) > rl.idleAfter() {
					delete(rl.buckets, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// idle buckets are full again after one interval, so dropping them is lossless
func (rl *RateLimiter) idleAfter() time.Duration {
	if rl.interval < time.Minute {
		return time.Minute
	}
	return 2 * rl.interval
}

// SecurityMiddleware enforces rate limiting and body size limits and records
// HTTP metrics.
type SecurityMiddleware struct {
	next    http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *RateLimiter
}

// NewSecurityMiddleware wraps handler with the configured limits.
func NewSecurityMiddleware(handler http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		next:   handler,
		logger: logger,
		config: config,
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

// Close releases the rate limiter.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
	defer func() {
		code := ww.Status()
		if code == 0 {
			code = http.StatusOK
		}
		metrics.RecordHTTPRequest(r.Method, routeLabel(r.URL.Path), strconv.Itoa(code), time.Since(start).Seconds())
	}()

	if sm.limiter != nil {
		ip := clientIP(r)
		if !sm.limiter.Allow(ip) {
			metrics.RateLimitRejections.Inc()
			sm.logger.Warn("Rate limit exceeded", "ip", ip, "path", r.URL.Path)
			ww.Header().Set("Retry-After", "60")
			http.Error(ww, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
	}

	if sm.config.MaxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(ww, r.Body, sm.config.MaxBodySize)
	}

	sm.next.ServeHTTP(ww, r)
}

// routeLabel maps a request path onto the fixed set of mounted routes so
// metric cardinality does not grow with client input.
func routeLabel(path string) string {
	switch {
	case path == "/mcp" || strings.HasPrefix(path, "/mcp/"):
		return "/mcp"
	case path == "/metrics", path == "/health":
		return path
	default:
		return "other"
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
