package repository

import (
	"time"

	"github.com/pgvector/pgvector-go"
)

// FaceReference is the enrolled biometric reference for one user. Exactly one
// row per user; re-enrollment overwrites it. The embedding column width must
// match the configured extractor dimensionality, so the table is created by
// Store.AutoMigrate from explicit DDL instead of a struct tag.
type FaceReference struct {
	UserID    string          `gorm:"column:user_id;primaryKey;size:64"`
	Embedding pgvector.Vector `gorm:"column:embedding"`
	UpdatedAt time.Time       `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (FaceReference) TableName() string {
	return "face_references"
}

// Proctor event types. These are classification outcomes, recorded for audit,
// never surfaced as errors.
const (
	EventNoFace        = "no_face"
	EventMultipleFaces = "multiple_faces"
	EventMismatch      = "mismatch"
)

// ProctorEvent is one recorded integrity violation. Rows are append-only: the
// proctoring path has no update or delete operation, and the auto-incremented
// primary key preserves insertion order per (user, session) for audit replay.
type ProctorEvent struct {
	ID        uint      `gorm:"primaryKey"`
	EventID   string    `gorm:"column:event_id;uniqueIndex;size:64"`
	UserID    string    `gorm:"column:user_id;index:idx_proctor_events_user_session;size:64"`
	SessionID string    `gorm:"column:session_id;index:idx_proctor_events_user_session;size:64"`
	Type      string    `gorm:"column:type;size:32"`
	Distance  *float64  `gorm:"column:distance"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (ProctorEvent) TableName() string {
	return "proctor_events"
}

// UserBlock is the per-user access restriction set by the block policy or an
// administrator.
type UserBlock struct {
	UserID    string     `gorm:"column:user_id;primaryKey;size:64"`
	IsBlocked bool       `gorm:"column:is_blocked;index"`
	Reason    string     `gorm:"column:reason;type:text"`
	BlockedAt *time.Time `gorm:"column:blocked_at"`
	UpdatedAt time.Time  `gorm:"column:updated_at"`
}

// TableName overrides the default table name.
func (UserBlock) TableName() string {
	return "user_blocks"
}

// VerificationAttempt is a persisted one-shot identity check, kept so callers
// can fetch an outcome again by request id. ImageSHA1 fingerprints the
// submitted bytes so byte-identical resubmissions can be found later.
type VerificationAttempt struct {
	ID        uint      `gorm:"primaryKey"`
	RequestID string    `gorm:"column:request_id;uniqueIndex;size:64"`
	UserID    string    `gorm:"column:user_id;size:64"`
	ImageSHA1 string    `gorm:"column:image_sha1;index;size:40"`
	Distance  float64   `gorm:"column:distance"`
	Verified  bool      `gorm:"column:verified"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (VerificationAttempt) TableName() string {
	return "verification_attempts"
}
