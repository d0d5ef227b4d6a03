package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/proctorguard/internal/embedding"
	"github.com/example/proctorguard/internal/logging"
)

// Store provides persistence for references, proctor events, block state and
// verification attempts. Transient database errors are retried with bounded
// backoff; everything else surfaces as an OperationError.
type Store struct {
	db             *gorm.DB
	logger         *zap.Logger
	embeddingDim   int
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewStore creates a new store instance. embeddingDim fixes the width of the
// reference vector column; it must match the extractor model.
func NewStore(db *gorm.DB, logger *zap.Logger, embeddingDim int) *Store {
	return &Store{
		db:             db,
		logger:         logger.Named("repository"),
		embeddingDim:   embeddingDim,
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available. The pgvector extension must
// already be installed in the target database. The reference table is created
// from explicit DDL so the vector column width follows the configured
// dimensionality.
func (s *Store) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return logging.NewOperationError("repository.create_extension", "", err)
	}
	if err := s.db.WithContext(ctx).Exec(faceReferencesDDL(s.embeddingDim)).Error; err != nil {
		return logging.NewOperationError("repository.create_face_references", "", err)
	}
	return s.db.WithContext(ctx).AutoMigrate(
		&ProctorEvent{},
		&UserBlock{},
		&VerificationAttempt{},
	)
}

func faceReferencesDDL(dim int) string {
	return fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS face_references (user_id varchar(64) PRIMARY KEY, embedding vector(%d) NOT NULL, updated_at timestamptz NOT NULL)",
		dim,
	)
}

// SaveReference stores or overwrites a user's enrolled embedding.
func (s *Store) SaveReference(ctx context.Context, userID string, vec embedding.Vector) error {
	ref := &FaceReference{
		UserID:    userID,
		Embedding: toPgVector(vec),
		UpdatedAt: time.Now().UTC(),
	}
	return s.executeWithRetry(ctx, "repository.save_reference", userID, func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
		}).Create(ref).Error
	})
}

// FindReference loads a user's enrolled embedding. A missing row returns
// gorm.ErrRecordNotFound for the caller to classify.
func (s *Store) FindReference(ctx context.Context, userID string) (embedding.Vector, error) {
	var ref FaceReference
	if err := s.db.WithContext(ctx).First(&ref, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return fromPgVector(ref.Embedding), nil
}

// AppendEvent records one proctor event. The event id makes the append
// idempotent under retry: a retried insert of the same event cannot produce a
// second row.
func (s *Store) AppendEvent(ctx context.Context, event *ProctorEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	return s.executeWithRetry(ctx, "repository.append_event", event.EventID, func() error {
		err := s.db.WithContext(ctx).Create(event).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	})
}

// ListEvents returns the events recorded for a (user, session) pair in
// insertion order.
func (s *Store) ListEvents(ctx context.Context, userID, sessionID string) ([]*ProctorEvent, error) {
	var events []*ProctorEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, logging.NewOperationError("repository.list_events", "", err)
	}
	return events, nil
}

// SetBlock marks a user as blocked. Re-blocking overwrites reason and
// timestamp; the blocked effect is unchanged.
func (s *Store) SetBlock(ctx context.Context, userID, reason string) error {
	now := time.Now().UTC()
	block := &UserBlock{
		UserID:    userID,
		IsBlocked: true,
		Reason:    reason,
		BlockedAt: &now,
		UpdatedAt: now,
	}
	return s.executeWithRetry(ctx, "repository.set_block", userID, func() error {
		return s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_blocked", "reason", "blocked_at", "updated_at"}),
		}).Create(block).Error
	})
}

// ClearBlock lifts a user's restriction and clears reason and timestamp.
func (s *Store) ClearBlock(ctx context.Context, userID string) error {
	return s.executeWithRetry(ctx, "repository.clear_block", userID, func() error {
		return s.db.WithContext(ctx).Model(&UserBlock{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"is_blocked": false,
				"reason":     "",
				"blocked_at": nil,
				"updated_at": time.Now().UTC(),
			}).Error
	})
}

// GetBlock loads a user's block row. A missing row returns
// gorm.ErrRecordNotFound; the policy layer treats that as not blocked.
func (s *Store) GetBlock(ctx context.Context, userID string) (*UserBlock, error) {
	var block UserBlock
	if err := s.db.WithContext(ctx).First(&block, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

// ListBlocked returns every currently blocked user.
func (s *Store) ListBlocked(ctx context.Context) ([]*UserBlock, error) {
	var blocks []*UserBlock
	err := s.db.WithContext(ctx).
		Where("is_blocked = ?", true).
		Order("blocked_at DESC").
		Find(&blocks).Error
	if err != nil {
		return nil, logging.NewOperationError("repository.list_blocked", "", err)
	}
	return blocks, nil
}

// SaveVerification persists a one-shot verification outcome.
func (s *Store) SaveVerification(ctx context.Context, attempt *VerificationAttempt) error {
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now().UTC()
	}
	return s.executeWithRetry(ctx, "repository.save_verification", attempt.RequestID, func() error {
		return s.db.WithContext(ctx).Create(attempt).Error
	})
}

// FindVerificationDuplicates returns the other attempts by the same user
// whose submitted image bytes were identical, in insertion order.
func (s *Store) FindVerificationDuplicates(ctx context.Context, userID, imageSHA1, excludeRequestID string) ([]*VerificationAttempt, error) {
	var attempts []*VerificationAttempt
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND image_sha1 = ? AND request_id <> ?", userID, imageSHA1, excludeRequestID).
		Order("id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, logging.NewOperationError("repository.find_verification_duplicates", "", err)
	}
	return attempts, nil
}

// FindVerificationByRequestIDAndUser retrieves a verification attempt matching
// the request and owner.
func (s *Store) FindVerificationByRequestIDAndUser(ctx context.Context, requestID, userID string) (*VerificationAttempt, error) {
	var attempt VerificationAttempt
	if err := s.db.WithContext(ctx).First(&attempt, "request_id = ? AND user_id = ?", requestID, userID).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// EventAggregation summarizes persisted proctor events.
type EventAggregation struct {
	TotalEvents         int64
	NoFaceCount         int64
	MultipleFacesCount  int64
	MismatchCount       int64
	AvgMismatchDistance float64
}

// AggregateEvents computes event counts by type and the average recorded
// mismatch distance.
func (s *Store) AggregateEvents(ctx context.Context) (*EventAggregation, error) {
	var agg EventAggregation
	err := s.db.WithContext(ctx).Model(&ProctorEvent{}).
		Select(
			"COUNT(*) AS total_events, " +
				"COUNT(*) FILTER (WHERE type = 'no_face') AS no_face_count, " +
				"COUNT(*) FILTER (WHERE type = 'multiple_faces') AS multiple_faces_count, " +
				"COUNT(*) FILTER (WHERE type = 'mismatch') AS mismatch_count, " +
				"COALESCE(AVG(distance) FILTER (WHERE type = 'mismatch'), 0) AS avg_mismatch_distance",
		).
		Scan(&agg).Error
	if err != nil {
		return nil, logging.NewOperationError("repository.aggregate_events", "", err)
	}
	return &agg, nil
}

func (s *Store) executeWithRetry(ctx context.Context, operation, requestID string, fn func() error) error {
	if s.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := s.initialBackoff
	opLogger := logging.WithOperation(s.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < s.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= s.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("database operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !logging.IsTransientError(err) || attempt == s.retryAttempts-1 {
			opLogger.Error("database operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient database error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func toPgVector(vec embedding.Vector) pgvector.Vector {
	converted := make([]float32, len(vec))
	for i, v := range vec {
		converted[i] = float32(v)
	}
	return pgvector.NewVector(converted)
}

func fromPgVector(vec pgvector.Vector) embedding.Vector {
	slice := vec.Slice()
	converted := make(embedding.Vector, len(slice))
	for i, v := range slice {
		converted[i] = float64(v)
	}
	return converted
}
