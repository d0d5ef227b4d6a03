package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/proctorguard/internal/embedding"
	"github.com/example/proctorguard/internal/extractor"
	"github.com/example/proctorguard/internal/logging"
	"github.com/example/proctorguard/internal/repository"
)

// Status classifies one proctored frame. These are expected results of the
// decision logic, not errors; each non-ok status produces exactly one
// violation event.
type Status string

const (
	StatusOK            Status = "ok"
	StatusNoFace        Status = "no_face"
	StatusMultipleFaces Status = "multiple_faces"
	StatusMismatch      Status = "mismatch"
)

// CheckResult is the outcome of a single proctoring check. Distance is set
// only when exactly one face was evaluated.
type CheckResult struct {
	Status   Status
	Distance *float64
}

// ProctorRepository defines the persistence operations needed by the
// proctoring flow.
type ProctorRepository interface {
	FindReference(ctx context.Context, userID string) (embedding.Vector, error)
	AppendEvent(ctx context.Context, event *repository.ProctorEvent) error
	ListEvents(ctx context.Context, userID, sessionID string) ([]*repository.ProctorEvent, error)
	AggregateEvents(ctx context.Context) (*repository.EventAggregation, error)
}

// ProctorUseCase classifies periodic session frames against the enrolled
// reference. Checks are stateless across calls; the only shared state is what
// gets persisted to the violation log.
type ProctorUseCase struct {
	repo      ProctorRepository
	extractor extractor.Client
	logger    *zap.Logger

	threshold    float64
	embeddingDim int
}

// NewProctorUseCase constructs a new use case instance. The threshold is
// looser than the verification one: session frames are sampled hundreds of
// times under uncontrolled lighting, and one noisy mismatch is logged rather
// than punitive.
func NewProctorUseCase(repo ProctorRepository, client extractor.Client, logger *zap.Logger, threshold float64, embeddingDim int) *ProctorUseCase {
	return &ProctorUseCase{
		repo:         repo,
		extractor:    client,
		logger:       logger.Named("proctor_usecase"),
		threshold:    threshold,
		embeddingDim: embeddingDim,
	}
}

// Check classifies one frame for a proctored session. A missing or malformed
// reference fails with ErrNoReference before any extraction runs and writes
// nothing; extraction failures also write nothing. Every violation status
// appends exactly one event.
func (uc *ProctorUseCase) Check(ctx context.Context, userID, sessionID string, image []byte) (*CheckResult, error) {
	opLogger := uc.logger.With(
		zap.String("user_id", userID),
		zap.String("session_id", sessionID),
	)

	reference, err := loadReference(ctx, uc.repo, uc.logger, uc.embeddingDim, userID)
	if err != nil {
		return nil, err
	}

	faces, err := uc.extractor.Detect(ctx, image, extractor.ModeAll)
	if err != nil {
		return nil, err
	}

	switch {
	case len(faces) == 0:
		if err := uc.appendEvent(ctx, userID, sessionID, repository.EventNoFace, nil); err != nil {
			return nil, err
		}
		opLogger.Info("frame classified", zap.String("status", string(StatusNoFace)))
		return &CheckResult{Status: StatusNoFace}, nil

	case len(faces) > 1:
		// Extra detections are ignored outright, never ranked or averaged.
		if err := uc.appendEvent(ctx, userID, sessionID, repository.EventMultipleFaces, nil); err != nil {
			return nil, err
		}
		opLogger.Info("frame classified",
			zap.String("status", string(StatusMultipleFaces)),
			zap.Int("faces", len(faces)))
		return &CheckResult{Status: StatusMultipleFaces}, nil
	}

	distance, err := embedding.Distance(faces[0].Embedding, reference)
	if err != nil {
		wrapped := logging.NewOperationError("usecase.proctor_distance", "", err)
		opLogger.Error("distance computation failed", zap.Error(wrapped))
		return nil, wrapped
	}

	if distance >= uc.threshold {
		if err := uc.appendEvent(ctx, userID, sessionID, repository.EventMismatch, &distance); err != nil {
			return nil, err
		}
		opLogger.Info("frame classified",
			zap.String("status", string(StatusMismatch)),
			zap.Float64("distance", distance))
		return &CheckResult{Status: StatusMismatch, Distance: &distance}, nil
	}

	opLogger.Debug("frame classified",
		zap.String("status", string(StatusOK)),
		zap.Float64("distance", distance))
	return &CheckResult{Status: StatusOK, Distance: &distance}, nil
}

// SessionEvents returns the violation events recorded for a (user, session)
// pair in insertion order.
func (uc *ProctorUseCase) SessionEvents(ctx context.Context, userID, sessionID string) ([]*repository.ProctorEvent, error) {
	return uc.repo.ListEvents(ctx, userID, sessionID)
}

func (uc *ProctorUseCase) appendEvent(ctx context.Context, userID, sessionID, eventType string, distance *float64) error {
	event := &repository.ProctorEvent{
		EventID:   uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		Type:      eventType,
		Distance:  distance,
	}
	if err := uc.repo.AppendEvent(ctx, event); err != nil {
		uc.logger.Error("failed to append proctor event",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("session_id", sessionID),
			zap.String("type", eventType))
		return err
	}
	return nil
}
