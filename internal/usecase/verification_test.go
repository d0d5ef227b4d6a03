package usecase

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/example/proctorguard/internal/embedding"
	"github.com/example/proctorguard/internal/logging"
	"github.com/example/proctorguard/internal/repository"
)

func newVerificationUnderTest(store *stubStore, cache *stubCache, ext *stubExtractor, dim int) *VerificationUseCase {
	return NewVerificationUseCase(store, cache, ext, zap.NewNop(), 0.5, dim)
}

func patternVector(dim int) embedding.Vector {
	vec := make(embedding.Vector, dim)
	for i := range vec {
		vec[i] = 0.1 * float64(i%10)
	}
	return vec
}

func TestVerifyIdenticalEmbeddingPasses(t *testing.T) {
	reference := patternVector(128)
	store := newStubStore()
	store.reference = reference
	ext := &stubExtractor{faces: singleFace(append(embedding.Vector{}, reference...))}
	uc := newVerificationUnderTest(store, &stubCache{}, ext, 128)

	requestID, result, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requestID == "" {
		t.Fatal("expected a request id")
	}
	if !result.Verified {
		t.Fatal("identical embedding must verify")
	}
	if result.Distance != 0 {
		t.Fatalf("expected zero distance, got %f", result.Distance)
	}
	if len(store.attempts) != 1 || !store.attempts[0].Verified {
		t.Fatalf("expected one verified attempt persisted, got %+v", store.attempts)
	}
}

func TestVerifyDistanceAtThresholdFails(t *testing.T) {
	store := newStubStore()
	store.reference = embedding.Vector{0, 0, 0}
	ext := &stubExtractor{faces: singleFace(embedding.Vector{0.5, 0, 0})}
	uc := newVerificationUnderTest(store, &stubCache{}, ext, 3)

	_, result, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Verified {
		t.Fatal("distance equal to the threshold must not verify")
	}
	if result.Distance != 0.5 {
		t.Fatalf("expected distance 0.5, got %f", result.Distance)
	}
}

func TestVerifyBelowThresholdPasses(t *testing.T) {
	store := newStubStore()
	store.reference = embedding.Vector{0, 0, 0}
	ext := &stubExtractor{faces: singleFace(embedding.Vector{0.4, 0, 0})}
	uc := newVerificationUnderTest(store, &stubCache{}, ext, 3)

	_, result, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Verified {
		t.Fatal("distance below the threshold must verify")
	}
}

func TestVerifyNoReference(t *testing.T) {
	store := newStubStore()
	uc := newVerificationUnderTest(store, &stubCache{}, &stubExtractor{}, 3)

	_, _, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if !errors.Is(err, ErrNoReference) {
		t.Fatalf("expected ErrNoReference, got %v", err)
	}
}

func TestVerifyNoFaceDetected(t *testing.T) {
	store := newStubStore()
	store.reference = embedding.Vector{0, 0, 0}
	uc := newVerificationUnderTest(store, &stubCache{}, &stubExtractor{faces: nil}, 3)

	_, _, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if !errors.Is(err, ErrNoFaceDetected) {
		t.Fatalf("expected ErrNoFaceDetected, got %v", err)
	}
	if len(store.attempts) != 0 {
		t.Fatal("no attempt must be persisted without a face")
	}
}

func TestVerifyRetriesRedisSet(t *testing.T) {
	store := newStubStore()
	store.reference = embedding.Vector{0, 0, 0}
	cache := &stubCache{setErrs: []error{transientRedisError{}}}
	ext := &stubExtractor{faces: singleFace(embedding.Vector{0.1, 0, 0})}
	uc := newVerificationUnderTest(store, cache, ext, 3)

	_, result, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if !result.Verified {
		t.Fatal("expected verified result")
	}
	if len(cache.setKeys) < 3 {
		t.Fatalf("expected at least 3 cache set calls (retry + result), got %d", len(cache.setKeys))
	}
	if cache.setKeys[0] != cache.setKeys[1] {
		t.Fatalf("expected retry to target same key, got %s and %s", cache.setKeys[0], cache.setKeys[1])
	}
	if len(store.attempts) != 1 {
		t.Fatalf("expected attempt to be saved, got %d entries", len(store.attempts))
	}
}

func TestVerifyReturnsOperationErrorOnCacheFailure(t *testing.T) {
	store := newStubStore()
	store.reference = embedding.Vector{0, 0, 0}
	cache := &stubCache{setErrs: []error{errors.New("boom")}}
	ext := &stubExtractor{faces: singleFace(embedding.Vector{0.1, 0, 0})}
	uc := newVerificationUnderTest(store, cache, ext, 3)

	_, _, err := uc.Verify(context.Background(), "user-1", []byte("image"))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var opErr *logging.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Operation != "cache.set.processing" {
		t.Fatalf("unexpected operation: %s", opErr.Operation)
	}
}

func TestGetResultFallsBackToRepositoryWhenCacheMiss(t *testing.T) {
	store := newStubStore()
	expected := &repository.VerificationAttempt{RequestID: "req", UserID: "user", Distance: 0.2, Verified: true}
	store.findAttempt = expected
	uc := newVerificationUnderTest(store, &stubCache{}, &stubExtractor{}, 3)

	attempt, err := uc.GetResult(context.Background(), "user", "req")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if attempt != expected {
		t.Fatalf("expected %+v, got %+v", expected, attempt)
	}
	if store.findCalls != 1 {
		t.Fatalf("expected repository to be queried once, got %d", store.findCalls)
	}
}

func TestGetResultUsesCachedPayload(t *testing.T) {
	store := newStubStore()
	cache := &stubCache{getValues: []string{`{"request_id":"req","user_id":"user","distance":0.25,"verified":true}`}}
	uc := newVerificationUnderTest(store, cache, &stubExtractor{}, 3)

	attempt, err := uc.GetResult(context.Background(), "user", "req")
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if attempt.Distance != 0.25 || !attempt.Verified {
		t.Fatalf("unexpected cached attempt: %+v", attempt)
	}
	if store.findCalls != 0 {
		t.Fatal("repository must not be queried on a cache hit")
	}
}

func TestVerifyFingerprintsSubmittedImage(t *testing.T) {
	store := newStubStore()
	store.reference = embedding.Vector{0.1, 0, 0}
	ext := &stubExtractor{faces: singleFace(embedding.Vector{0.1, 0, 0})}
	uc := newVerificationUnderTest(store, &stubCache{}, ext, 3)

	image := []byte("frame bytes")
	if _, _, err := uc.Verify(context.Background(), "user-1", image); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hash := sha1.Sum(image)
	want := hex.EncodeToString(hash[:])
	if len(store.attempts) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(store.attempts))
	}
	if store.attempts[0].ImageSHA1 != want {
		t.Fatalf("expected image hash %s, got %s", want, store.attempts[0].ImageSHA1)
	}
}

func TestFindReplaysReturnsMatchingAttempts(t *testing.T) {
	store := newStubStore()
	store.findAttempt = &repository.VerificationAttempt{RequestID: "req", UserID: "user", ImageSHA1: "abc123"}
	store.duplicates = []*repository.VerificationAttempt{
		{RequestID: "earlier", UserID: "user", ImageSHA1: "abc123"},
	}
	uc := newVerificationUnderTest(store, &stubCache{}, &stubExtractor{}, 3)

	report, err := uc.FindReplays(context.Background(), "user", "req")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Matches) != 1 || report.Matches[0].RequestID != "earlier" {
		t.Fatalf("unexpected matches: %+v", report.Matches)
	}
	if len(store.dupQueries) != 1 {
		t.Fatalf("expected 1 duplicate lookup, got %d", len(store.dupQueries))
	}
	if q := store.dupQueries[0]; q[0] != "user" || q[1] != "abc123" || q[2] != "req" {
		t.Fatalf("unexpected lookup arguments: %v", q)
	}
}

func TestFindReplaysSkipsLookupWithoutFingerprint(t *testing.T) {
	store := newStubStore()
	store.findAttempt = &repository.VerificationAttempt{RequestID: "req", UserID: "user"}
	uc := newVerificationUnderTest(store, &stubCache{}, &stubExtractor{}, 3)

	report, err := uc.FindReplays(context.Background(), "user", "req")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Matches) != 0 {
		t.Fatalf("expected no matches, got %+v", report.Matches)
	}
	if len(store.dupQueries) != 0 {
		t.Fatal("must not query duplicates without a fingerprint")
	}
}

func TestEnrollStoresReference(t *testing.T) {
	store := newStubStore()
	vec := embedding.Vector{0.1, 0.2, 0.3}
	ext := &stubExtractor{faces: singleFace(vec)}
	uc := newVerificationUnderTest(store, &stubCache{}, ext, 3)

	if err := uc.Enroll(context.Background(), "user-1", []byte("image")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saved, ok := store.savedRefs["user-1"]
	if !ok {
		t.Fatal("expected reference to be saved")
	}
	if len(saved) != 3 || saved[2] != 0.3 {
		t.Fatalf("unexpected saved reference: %v", saved)
	}
}

func TestEnrollNoFaceLeavesReferenceUntouched(t *testing.T) {
	store := newStubStore()
	uc := newVerificationUnderTest(store, &stubCache{}, &stubExtractor{faces: nil}, 3)

	err := uc.Enroll(context.Background(), "user-1", []byte("image"))
	if !errors.Is(err, ErrNoFaceDetected) {
		t.Fatalf("expected ErrNoFaceDetected, got %v", err)
	}
	if len(store.savedRefs) != 0 {
		t.Fatal("reference must not be written without a face")
	}
}

func TestEnrollRejectsWrongDimension(t *testing.T) {
	store := newStubStore()
	ext := &stubExtractor{faces: singleFace(embedding.Vector{0.1, 0.2})}
	uc := newVerificationUnderTest(store, &stubCache{}, ext, 3)

	if err := uc.Enroll(context.Background(), "user-1", []byte("image")); err == nil {
		t.Fatal("expected error for wrong-dimensional embedding")
	}
	if len(store.savedRefs) != 0 {
		t.Fatal("reference must not be written for a malformed embedding")
	}
}
