package serverutils

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RunGate enforces a minimum interval between side-effecting runs of a named
// job. It replaces a process-global "last run" timestamp with an explicit
// value constructed in bootstrap and handed to whoever needs it.
type RunGate struct {
	interval time.Duration
	cache    *cache.Cache
}

func NewRunGate(interval time.Duration) *RunGate {
	return &RunGate{
		interval: interval,
		cache:    cache.New(interval, 2*interval),
	}
}

// Allow reports whether a run of the named job may start now. The first call
// inside any interval wins; later calls are rejected until the entry expires.
func (g *RunGate) Allow(job string) bool {
	if g == nil || g.interval <= 0 {
		return true
	}
	return g.cache.Add(job, time.Now(), cache.DefaultExpiration) == nil
}
