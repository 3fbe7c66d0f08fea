// Package cache provides a Redis read-through layer over a catalog source.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"recruit/internal/catalog/models"
	"recruit/pkg/domain"
	"recruit/pkg/platform/circuit"
)

const (
	specialtyKeyPrefix = "catalog:specialty:"
	courseKeyPrefix    = "catalog:course:"
)

// Source is the authoritative catalog the cache reads through to.
type Source interface {
	FindSpecialty(ctx context.Context, key domain.SpecialtyKey) (*models.Specialty, error)
	FindCourses(ctx context.Context, ids []domain.CourseID) (map[domain.CourseID]*models.Course, error)
}

// Catalog caches positive lookups only; a missing specialty or course is
// always re-checked against the source. Redis failures degrade to the source.
// After repeated failures the circuit opens: cached values are ignored and
// nothing is written until Redis answers reliably again.
type Catalog struct {
	source  Source
	client  *redis.Client
	ttl     time.Duration
	logger  *slog.Logger
	breaker *circuit.Breaker
}

// Option configures a Catalog.
type Option func(*Catalog)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Catalog) {
		c.breaker = b
	}
}

// New wraps source with a Redis cache whose entries expire after ttl.
func New(source Source, client *redis.Client, ttl time.Duration, opts ...Option) *Catalog {
	c := &Catalog{
		source:  source,
		client:  client,
		ttl:     ttl,
		logger:  slog.New(slog.DiscardHandler),
		breaker: circuit.New("catalog-cache"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Catalog) FindSpecialty(ctx context.Context, key domain.SpecialtyKey) (*models.Specialty, error) {
	cacheKey := specialtyKeyPrefix + key.String()
	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		if c.succeeded(ctx) {
			var sp models.Specialty
			if jerr := json.Unmarshal(raw, &sp); jerr == nil {
				return &sp, nil
			}
		}
	case errors.Is(err, redis.Nil):
		c.succeeded(ctx)
	default:
		c.failed(ctx, "catalog cache read failed", err)
	}

	sp, err := c.source.FindSpecialty(ctx, key)
	if err != nil {
		return nil, err
	}
	c.store(ctx, cacheKey, sp)
	return sp, nil
}

func (c *Catalog) FindCourses(ctx context.Context, ids []domain.CourseID) (map[domain.CourseID]*models.Course, error) {
	out := make(map[domain.CourseID]*models.Course, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = courseKeyPrefix + id.String()
	}
	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		c.failed(ctx, "catalog cache read failed", err)
		values = make([]any, len(ids))
	} else if !c.succeeded(ctx) {
		values = make([]any, len(ids))
	}

	var missing []domain.CourseID
	for i, id := range ids {
		if s, ok := values[i].(string); ok {
			var course models.Course
			if json.Unmarshal([]byte(s), &course) == nil {
				out[id] = &course
				continue
			}
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return out, nil
	}

	found, err := c.source.FindCourses(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, course := range found {
		out[id] = course
		c.store(ctx, courseKeyPrefix+id.String(), course)
	}
	return out, nil
}

func (c *Catalog) store(ctx context.Context, key string, v any) {
	if c.breaker.IsOpen() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.failed(ctx, "catalog cache write failed", err)
	}
}

// succeeded records a Redis round trip and reports whether cached values may
// be served.
func (c *Catalog) succeeded(ctx context.Context) bool {
	usePrimary, change := c.breaker.RecordSuccess()
	if change.Closed {
		c.logger.InfoContext(ctx, "catalog cache circuit closed", "breaker", c.breaker.Name())
	}
	return usePrimary
}

// failed logs the first failures individually and then only the transition
// to open.
func (c *Catalog) failed(ctx context.Context, msg string, err error) {
	useFallback, change := c.breaker.RecordFailure()
	switch {
	case change.Opened:
		c.logger.WarnContext(ctx, "catalog cache circuit opened; reading from source",
			"breaker", c.breaker.Name(),
			"error", err,
		)
	case !useFallback:
		c.logger.WarnContext(ctx, msg, "error", err)
	}
}
