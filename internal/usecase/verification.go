package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/proctorguard/internal/embedding"
	"github.com/example/proctorguard/internal/extractor"
	"github.com/example/proctorguard/internal/logging"
	"github.com/example/proctorguard/internal/repository"
)

// VerificationRepository defines the persistence operations needed by the
// one-shot verification flow.
type VerificationRepository interface {
	FindReference(ctx context.Context, userID string) (embedding.Vector, error)
	SaveReference(ctx context.Context, userID string, vec embedding.Vector) error
	SaveVerification(ctx context.Context, attempt *repository.VerificationAttempt) error
	FindVerificationByRequestIDAndUser(ctx context.Context, requestID, userID string) (*repository.VerificationAttempt, error)
	FindVerificationDuplicates(ctx context.Context, userID, imageSHA1, excludeRequestID string) ([]*repository.VerificationAttempt, error)
}

// VerifyResult is the outcome of a one-shot identity check.
type VerifyResult struct {
	Verified bool
	Distance float64
}

// VerificationUseCase runs enrollment and one-shot identity checks. The
// one-shot path gates an irreversible action and uses the stricter of the two
// thresholds; it never writes to the violation log.
type VerificationUseCase struct {
	repo      VerificationRepository
	cache     *cacheRetrier
	extractor extractor.Client
	logger    *zap.Logger

	threshold    float64
	embeddingDim int
}

type cachedVerification struct {
	RequestID string    `json:"request_id"`
	UserID    string    `json:"user_id"`
	ImageSHA1 string    `json:"image_sha1"`
	Distance  float64   `json:"distance"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// NewVerificationUseCase constructs a new use case instance.
func NewVerificationUseCase(repo VerificationRepository, cache Cache, client extractor.Client, logger *zap.Logger, threshold float64, embeddingDim int) *VerificationUseCase {
	named := logger.Named("verification_usecase")
	return &VerificationUseCase{
		repo:         repo,
		cache:        newCacheRetrier(cache, named),
		extractor:    client,
		logger:       named,
		threshold:    threshold,
		embeddingDim: embeddingDim,
	}
}

// Enroll extracts the single most prominent face from the image and stores it
// as the user's reference, overwriting any previous enrollment. The reference
// is untouched when no face is found.
func (uc *VerificationUseCase) Enroll(ctx context.Context, userID string, image []byte) error {
	opLogger := logging.WithOperation(uc.logger, "usecase.enroll", userID)

	faces, err := uc.extractor.Detect(ctx, image, extractor.ModeSingle)
	if err != nil {
		return err
	}
	if len(faces) == 0 {
		return ErrNoFaceDetected
	}

	vec := faces[0].Embedding
	if len(vec) != uc.embeddingDim {
		err := fmt.Errorf("extractor returned %d-dimensional embedding, expected %d", len(vec), uc.embeddingDim)
		opLogger.Error("unusable extraction result", zap.Error(err))
		return logging.NewOperationError("usecase.enroll", userID, err)
	}

	if err := uc.repo.SaveReference(ctx, userID, vec); err != nil {
		opLogger.Error("failed to persist reference", zap.Error(err))
		return err
	}

	opLogger.Info("reference enrolled")
	return nil
}

// Verify runs a one-shot identity check of the image against the user's
// enrolled reference. Verified is true when the distance is strictly below
// the configured threshold.
func (uc *VerificationUseCase) Verify(ctx context.Context, userID string, image []byte) (string, *VerifyResult, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.verify", requestID)

	hash := sha1.Sum(image)
	imageSHA1 := hex.EncodeToString(hash[:])

	reference, err := loadReference(ctx, uc.repo, uc.logger, uc.embeddingDim, userID)
	if err != nil {
		return "", nil, err
	}

	cacheKey := fmt.Sprintf("verification:%s", requestID)
	if err := uc.cache.set(ctx, requestID, "cache.set.processing", cacheKey, "processing", time.Minute); err != nil {
		opLogger.Error("failed to set processing flag", zap.Error(err))
		return "", nil, err
	}

	faces, err := uc.extractor.Detect(ctx, image, extractor.ModeSingle)
	if err != nil {
		return "", nil, err
	}
	if len(faces) == 0 {
		return "", nil, ErrNoFaceDetected
	}

	distance, err := embedding.Distance(faces[0].Embedding, reference)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.distance", requestID, err)
		opLogger.Error("distance computation failed", zap.Error(wrapped))
		return "", nil, wrapped
	}

	result := &VerifyResult{
		Verified: distance < uc.threshold,
		Distance: distance,
	}

	attempt := &repository.VerificationAttempt{
		RequestID: requestID,
		UserID:    userID,
		ImageSHA1: imageSHA1,
		Distance:  distance,
		Verified:  result.Verified,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.repo.SaveVerification(ctx, attempt); err != nil {
		opLogger.Error("failed to persist verification attempt", zap.Error(err))
		return "", nil, err
	}

	serialized, err := json.Marshal(cachedVerification{
		RequestID: requestID,
		UserID:    userID,
		ImageSHA1: imageSHA1,
		Distance:  distance,
		Verified:  result.Verified,
		CreatedAt: attempt.CreatedAt,
	})
	if err != nil {
		opLogger.Error("failed to serialize verification result", zap.Error(err))
		return "", nil, err
	}
	if err := uc.cache.set(ctx, requestID, "cache.set.result", cacheKey, string(serialized), 5*time.Minute); err != nil {
		opLogger.Error("failed to cache verification result", zap.Error(err))
		return "", nil, err
	}

	opLogger.Info("verification completed",
		zap.Bool("verified", result.Verified),
		zap.Float64("distance", distance))
	return requestID, result, nil
}

// GetResult retrieves a verification outcome from cache, falling back to
// persistence on a miss.
func (uc *VerificationUseCase) GetResult(ctx context.Context, userID, requestID string) (*repository.VerificationAttempt, error) {
	cacheKey := fmt.Sprintf("verification:%s", requestID)
	if cached, err := uc.cache.get(ctx, requestID, "cache.get.result", cacheKey); err == nil {
		var payload cachedVerification
		if err := json.Unmarshal([]byte(cached), &payload); err != nil {
			logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to decode cached result", zap.Error(err))
		} else if payload.RequestID != "" && payload.UserID == userID {
			return &repository.VerificationAttempt{
				RequestID: payload.RequestID,
				UserID:    payload.UserID,
				ImageSHA1: payload.ImageSHA1,
				Distance:  payload.Distance,
				Verified:  payload.Verified,
				CreatedAt: payload.CreatedAt,
			}, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		logging.WithOperation(uc.logger, "usecase.get_result", requestID).Warn("failed to read cache", zap.Error(err))
	}

	return uc.repo.FindVerificationByRequestIDAndUser(ctx, requestID, userID)
}

// ReplayReport lists the other attempts by the same user that submitted a
// byte-identical image. A resubmitted capture is a replay signal worth
// surfacing to reviewers, not an automatic violation.
type ReplayReport struct {
	Attempt *repository.VerificationAttempt
	Matches []*repository.VerificationAttempt
}

// FindReplays looks up a verification attempt and any other attempts by the
// same user whose submitted image bytes were identical.
func (uc *VerificationUseCase) FindReplays(ctx context.Context, userID, requestID string) (*ReplayReport, error) {
	attempt, err := uc.GetResult(ctx, userID, requestID)
	if err != nil {
		return nil, err
	}

	report := &ReplayReport{Attempt: attempt}
	if attempt.ImageSHA1 == "" {
		return report, nil
	}

	matches, err := uc.repo.FindVerificationDuplicates(ctx, userID, attempt.ImageSHA1, attempt.RequestID)
	if err != nil {
		return nil, err
	}
	report.Matches = matches
	return report, nil
}
