package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the service relies on. It embeds
// UniversalClient so single, cluster and miniredis-backed clients all satisfy it.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// Z is a sorted set member
type Z = redis.Z
