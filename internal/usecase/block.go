package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/proctorguard/internal/repository"
)

// DefaultBlockReason is recorded when a block request carries no reason.
const DefaultBlockReason = "malpractice detected"

// blockCacheTTL bounds how stale a cached block answer can be.
const blockCacheTTL = time.Minute

// BlockRepository defines the persistence operations needed by the block
// policy.
type BlockRepository interface {
	SetBlock(ctx context.Context, userID, reason string) error
	ClearBlock(ctx context.Context, userID string) error
	GetBlock(ctx context.Context, userID string) (*repository.UserBlock, error)
	ListBlocked(ctx context.Context) ([]*repository.UserBlock, error)
}

// BlockPolicy owns the per-user access restriction. It only sets and answers
// block state; deciding when accumulated violations warrant a block is the
// caller's job, using the violation log as input.
type BlockPolicy struct {
	repo   BlockRepository
	cache  *cacheRetrier
	logger *zap.Logger
}

// NewBlockPolicy constructs a new policy instance.
func NewBlockPolicy(repo BlockRepository, cache Cache, logger *zap.Logger) *BlockPolicy {
	named := logger.Named("block_policy")
	return &BlockPolicy{
		repo:   repo,
		cache:  newCacheRetrier(cache, named),
		logger: named,
	}
}

// Block restricts a user. Idempotent: re-blocking overwrites the reason and
// timestamp but the effect is the same.
func (p *BlockPolicy) Block(ctx context.Context, userID, reason string) error {
	if reason == "" {
		reason = DefaultBlockReason
	}
	if err := p.repo.SetBlock(ctx, userID, reason); err != nil {
		return err
	}
	p.invalidate(ctx, userID)
	p.logger.Info("user blocked", zap.String("user_id", userID), zap.String("reason", reason))
	return nil
}

// Unblock lifts a user's restriction and clears reason and timestamp.
func (p *BlockPolicy) Unblock(ctx context.Context, userID string) error {
	if err := p.repo.ClearBlock(ctx, userID); err != nil {
		return err
	}
	p.invalidate(ctx, userID)
	p.logger.Info("user unblocked", zap.String("user_id", userID))
	return nil
}

// IsBlocked answers whether a user is currently restricted. A never-seen user
// is not blocked: the check must stay safe to call before registration is
// confirmed, so missing identity fails open rather than erroring.
func (p *BlockPolicy) IsBlocked(ctx context.Context, userID string) (bool, error) {
	key := blockCacheKey(userID)
	if cached, err := p.cache.get(ctx, userID, "cache.get.block", key); err == nil {
		return cached == "1", nil
	} else if !errors.Is(err, redis.Nil) {
		p.logger.Warn("failed to read block cache", zap.Error(err), zap.String("user_id", userID))
	}

	block, err := p.repo.GetBlock(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			p.cacheAnswer(ctx, userID, false)
			return false, nil
		}
		return false, err
	}

	p.cacheAnswer(ctx, userID, block.IsBlocked)
	return block.IsBlocked, nil
}

// ListBlocked returns every currently blocked user for the admin surface.
func (p *BlockPolicy) ListBlocked(ctx context.Context) ([]*repository.UserBlock, error) {
	return p.repo.ListBlocked(ctx)
}

// cacheAnswer is best effort: a cache write failure degrades to extra
// database reads, which must not fail the block check itself.
func (p *BlockPolicy) cacheAnswer(ctx context.Context, userID string, blocked bool) {
	value := "0"
	if blocked {
		value = "1"
	}
	if err := p.cache.set(ctx, userID, "cache.set.block", blockCacheKey(userID), value, blockCacheTTL); err != nil {
		p.logger.Warn("failed to cache block state", zap.Error(err), zap.String("user_id", userID))
	}
}

func (p *BlockPolicy) invalidate(ctx context.Context, userID string) {
	if err := p.cache.del(ctx, userID, "cache.del.block", blockCacheKey(userID)); err != nil {
		p.logger.Warn("failed to invalidate block cache", zap.Error(err), zap.String("user_id", userID))
	}
}

func blockCacheKey(userID string) string {
	return fmt.Sprintf("block:%s", userID)
}
