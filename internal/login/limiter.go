package login

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// 每个 IP 允许连续 5 次尝试，之后每 12 秒恢复一次
	defaultBurst  = 5
	defaultRefill = 12 * time.Second

	limiterIdleTTL   = 10 * time.Minute
	limiterSweepSize = 4096
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPLimiter 按客户端 IP 限制登录尝试次数
type IPLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func NewIPLimiter(limit rate.Limit, burst int) *IPLimiter {
	return &IPLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		burst:    burst,
		now:      time.Now,
	}
}

// NewDefaultLimiter 登录默认限流器
func NewDefaultLimiter() *IPLimiter {
	return NewIPLimiter(rate.Every(defaultRefill), defaultBurst)
}

// Allow 消耗该 IP 的一次尝试机会
func (l *IPLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	v, ok := l.visitors[ip]
	if !ok {
		if len(l.visitors) >= limiterSweepSize {
			l.sweep(now)
		}
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// sweep 清理长时间未出现的 IP，调用方需持有锁
func (l *IPLimiter) sweep(now time.Time) {
	for ip, v := range l.visitors {
		if now.Sub(v.lastSeen) > limiterIdleTTL {
			delete(l.visitors, ip)
		}
	}
}
