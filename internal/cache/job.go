// File: internal/cache/job.go
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"job-portal/internal/metrics"
	"job-portal/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	jobKeyPrefix = "job:"

	// tombstone marks a job as recently changed. Fills never overwrite it.
	tombstone = "-"

	// tombstoneTTL must outlast any fill that read the job before the change.
	tombstoneTTL = 30 * time.Second
)

func jobKey(id string) string {
	return jobKeyPrefix + id
}

// JobCache stores JSON-encoded job documents keyed by job id.
type JobCache struct {
	c   Cache
	ttl time.Duration
}

func NewJobCache(c Cache, ttl time.Duration) *JobCache {
	return &JobCache{c: c, ttl: ttl}
}

// GetJob returns the cached job, or nil on a miss. A tombstone is a miss.
func (j *JobCache) GetJob(ctx context.Context, id string) (*model.Job, error) {
	raw, err := j.c.Get(ctx, jobKey(id)).Bytes()
	if errors.Is(err, redis.Nil) || (err == nil && string(raw) == tombstone) {
		metrics.JobCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return nil, nil
	}
	if err != nil {
		metrics.JobCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		return nil, fmt.Errorf("GetJob: %w", err)
	}

	var job model.Job
	if err := json.Unmarshal(raw, &job); err != nil {
		metrics.JobCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		return nil, fmt.Errorf("GetJob decode: %w", err)
	}
	metrics.JobCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return &job, nil
}

// SetJob caches job unless the key is already taken, so a fill racing an
// update or delete loses to the tombstone Invalidate left behind.
func (j *JobCache) SetJob(ctx context.Context, job *model.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("SetJob encode: %w", err)
	}
	if err := j.c.SetNX(ctx, jobKey(job.ID), data, j.ttl).Err(); err != nil {
		return fmt.Errorf("SetJob: %w", err)
	}
	return nil
}

// Invalidate replaces the cached copy with a tombstone for tombstoneTTL.
func (j *JobCache) Invalidate(ctx context.Context, id string) error {
	if err := j.c.Set(ctx, jobKey(id), tombstone, tombstoneTTL).Err(); err != nil {
		return fmt.Errorf("Invalidate: %w", err)
	}
	return nil
}
