package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/proctorguard/internal/embedding"
)

type referenceFinder interface {
	FindReference(ctx context.Context, userID string) (embedding.Vector, error)
}

// loadReference fetches the enrolled embedding and validates its length. An
// absent row and a vector of the wrong dimensionality both read as not
// enrolled; neither is ever treated as a proctoring violation.
func loadReference(ctx context.Context, repo referenceFinder, logger *zap.Logger, embeddingDim int, userID string) (embedding.Vector, error) {
	reference, err := repo.FindReference(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoReference
		}
		return nil, err
	}
	if len(reference) != embeddingDim {
		logger.Warn("stored reference has wrong dimensionality",
			zap.String("user_id", userID),
			zap.Int("length", len(reference)))
		return nil, ErrNoReference
	}
	return reference, nil
}
