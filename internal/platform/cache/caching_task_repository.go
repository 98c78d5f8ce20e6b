// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"todo_backend/internal/feature/tasks/domain/entity"
	"todo_backend/internal/feature/tasks/usecase"
)

// CachingTaskRepository decorates a TaskRepository with Redis caching of
// per-user task lists. It implements the decorator pattern, transparently
// adding caching without modifying the underlying repository.
//
// Single-task reads always go to the database; only ListByUser is cached,
// and every write invalidates the owner's list key. Cache traffic is best
// effort: a failing or absent Redis never fails a request.
type CachingTaskRepository struct {
	inner     usecase.TaskRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.TaskRepository = (*CachingTaskRepository)(nil)

// NewCachingTaskRepository decorates a TaskRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "tasks".
func NewCachingTaskRepository(rdb *redis.Client, ttl time.Duration, inner usecase.TaskRepository, namespace string) *CachingTaskRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "tasks"
	}
	return &CachingTaskRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create persists a task and invalidates the owner's cached list.
func (c *CachingTaskRepository) Create(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Create(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.UserID)
	return nil
}

// ListByUser retrieves the user's tasks, checking cache first then falling
// back to the database.
func (c *CachingTaskRepository) ListByUser(ctx context.Context, userID uint) ([]entity.Task, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListByUser(ctx, userID)
	}

	key := c.listKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Task
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByOwner always reads from the underlying repository.
func (c *CachingTaskRepository) FindByOwner(ctx context.Context, id, userID uint) (*entity.Task, error) {
	return c.inner.FindByOwner(ctx, id, userID)
}

// Save persists task changes and invalidates the owner's cached list.
func (c *CachingTaskRepository) Save(ctx context.Context, t *entity.Task) error {
	if err := c.inner.Save(ctx, t); err != nil {
		return err
	}
	c.invalidate(ctx, t.UserID)
	return nil
}

// DeleteByOwner deletes a task and invalidates the owner's cached list.
func (c *CachingTaskRepository) DeleteByOwner(ctx context.Context, id, userID uint) error {
	if err := c.inner.DeleteByOwner(ctx, id, userID); err != nil {
		return err
	}
	c.invalidate(ctx, userID)
	return nil
}

// listKey generates the cache key for a user's task list.
func (c *CachingTaskRepository) listKey(userID uint) string {
	return fmt.Sprintf("%s:user:%d:list", c.namespace, userID)
}

// invalidate drops the owner's list key. Best effort: cache failures are ignored.
func (c *CachingTaskRepository) invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.listKey(userID)).Err()
}
