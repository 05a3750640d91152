package checker

import (
	"context"
)

const (
	NameDatabase = "db"
	NameCache    = "cache"
)

type DatabaseProber interface {
	Probe(ctx context.Context) error
}

type CachePinger interface {
	Ping(ctx context.Context) error
}

type databaseChecker struct {
	prober DatabaseProber
}

// NewDatabase checks the relational store with a fresh connection per call.
func NewDatabase(prober DatabaseProber) Checker {
	return &databaseChecker{prober: prober}
}

func (c *databaseChecker) Name() string {
	return NameDatabase
}

func (c *databaseChecker) Check(ctx context.Context) Result {
	return FromError(c.prober.Probe(ctx))
}

type cacheChecker struct {
	pinger CachePinger
}

// NewCache pings the shared cache client.
func NewCache(pinger CachePinger) Checker {
	return &cacheChecker{pinger: pinger}
}

func (c *cacheChecker) Name() string {
	return NameCache
}

func (c *cacheChecker) Check(ctx context.Context) Result {
	return FromError(c.pinger.Ping(ctx))
}
