package http

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxLoginClients bounds how many client buckets are tracked at once.
const maxLoginClients = 10000

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiters keeps one token bucket per client address.
type loginLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	max     int
	now     func() time.Time
}

func newLoginLimiters(limit float64, burst int) *loginLimiters {
	return &loginLimiters{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Limit(limit),
		burst:   burst,
		max:     maxLoginClients,
		now:     time.Now,
	}
}

func (l *loginLimiters) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[client]
	if !ok {
		if len(l.clients) >= l.max {
			l.evictOldest()
		}
		c = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[client] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// evictOldest drops the least recently seen client. Callers hold mu.
func (l *loginLimiters) evictOldest() {
	var (
		oldestKey  string
		oldestSeen time.Time
	)
	for key, c := range l.clients {
		if oldestKey == "" || c.lastSeen.Before(oldestSeen) {
			oldestKey, oldestSeen = key, c.lastSeen
		}
	}
	delete(l.clients, oldestKey)
}

func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// withLoginRateLimit rejects requests with 429 once the caller's login bucket is empty.
func (h *Handler) withLoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.loginLimiters != nil && !h.loginLimiters.allow(clientAddress(r)) {
			w.Header().Set("Retry-After", "1")
			writeError(w, r, ErrTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
