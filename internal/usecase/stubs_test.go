package usecase

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/example/proctorguard/internal/embedding"
	"github.com/example/proctorguard/internal/extractor"
	"github.com/example/proctorguard/internal/repository"
)

type stubStore struct {
	reference    embedding.Vector
	referenceErr error
	savedRefs    map[string]embedding.Vector

	events       []*repository.ProctorEvent
	appendErr    error
	listedEvents []*repository.ProctorEvent

	attempts    []*repository.VerificationAttempt
	saveErr     error
	findAttempt *repository.VerificationAttempt
	findErr     error
	findCalls   int
	duplicates  []*repository.VerificationAttempt
	dupQueries  [][3]string

	blocks      map[string]*repository.UserBlock
	aggregation *repository.EventAggregation
}

func newStubStore() *stubStore {
	return &stubStore{
		savedRefs: make(map[string]embedding.Vector),
		blocks:    make(map[string]*repository.UserBlock),
	}
}

func (s *stubStore) FindReference(ctx context.Context, userID string) (embedding.Vector, error) {
	if s.referenceErr != nil {
		return nil, s.referenceErr
	}
	if s.reference == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.reference, nil
}

func (s *stubStore) SaveReference(ctx context.Context, userID string, vec embedding.Vector) error {
	s.savedRefs[userID] = vec
	return nil
}

func (s *stubStore) AppendEvent(ctx context.Context, event *repository.ProctorEvent) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.events = append(s.events, event)
	return nil
}

func (s *stubStore) ListEvents(ctx context.Context, userID, sessionID string) ([]*repository.ProctorEvent, error) {
	return s.listedEvents, nil
}

func (s *stubStore) AggregateEvents(ctx context.Context) (*repository.EventAggregation, error) {
	if s.aggregation != nil {
		return s.aggregation, nil
	}
	return &repository.EventAggregation{}, nil
}

func (s *stubStore) SaveVerification(ctx context.Context, attempt *repository.VerificationAttempt) error {
	s.attempts = append(s.attempts, attempt)
	return s.saveErr
}

func (s *stubStore) FindVerificationByRequestIDAndUser(ctx context.Context, requestID, userID string) (*repository.VerificationAttempt, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.findAttempt != nil {
		return s.findAttempt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubStore) FindVerificationDuplicates(ctx context.Context, userID, imageSHA1, excludeRequestID string) ([]*repository.VerificationAttempt, error) {
	s.dupQueries = append(s.dupQueries, [3]string{userID, imageSHA1, excludeRequestID})
	return s.duplicates, nil
}

func (s *stubStore) SetBlock(ctx context.Context, userID, reason string) error {
	now := time.Now().UTC()
	s.blocks[userID] = &repository.UserBlock{
		UserID:    userID,
		IsBlocked: true,
		Reason:    reason,
		BlockedAt: &now,
	}
	return nil
}

func (s *stubStore) ClearBlock(ctx context.Context, userID string) error {
	if block, ok := s.blocks[userID]; ok {
		block.IsBlocked = false
		block.Reason = ""
		block.BlockedAt = nil
	}
	return nil
}

func (s *stubStore) GetBlock(ctx context.Context, userID string) (*repository.UserBlock, error) {
	block, ok := s.blocks[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return block, nil
}

func (s *stubStore) ListBlocked(ctx context.Context) ([]*repository.UserBlock, error) {
	var out []*repository.UserBlock
	for _, block := range s.blocks {
		if block.IsBlocked {
			out = append(out, block)
		}
	}
	return out, nil
}

// stubCache misses by default, like an empty redis.
type stubCache struct {
	setErrs   []error
	getErrs   []error
	getValues []string
	setKeys   []string
	getKeys   []string
	delKeys   []string
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	if len(s.setErrs) == 0 {
		return nil
	}
	err := s.setErrs[0]
	s.setErrs = s.setErrs[1:]
	return err
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	if len(s.getErrs) > 0 {
		err := s.getErrs[0]
		s.getErrs = s.getErrs[1:]
		return "", err
	}
	if len(s.getValues) > 0 {
		value := s.getValues[0]
		s.getValues = s.getValues[1:]
		return value, nil
	}
	return "", redis.Nil
}

func (s *stubCache) Del(ctx context.Context, keys ...string) error {
	s.delKeys = append(s.delKeys, keys...)
	return nil
}

type stubExtractor struct {
	faces     []extractor.Face
	err       error
	lastMode  extractor.Mode
	callCount int
}

func (s *stubExtractor) Detect(ctx context.Context, image []byte, mode extractor.Mode) ([]extractor.Face, error) {
	s.callCount++
	s.lastMode = mode
	if s.err != nil {
		return nil, s.err
	}
	return s.faces, nil
}

type transientRedisError struct{}

func (transientRedisError) Error() string   { return "redis transient" }
func (transientRedisError) Timeout() bool   { return true }
func (transientRedisError) Temporary() bool { return true }

func singleFace(vec embedding.Vector) []extractor.Face {
	return []extractor.Face{{Embedding: vec}}
}
