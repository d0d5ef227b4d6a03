package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/example/proctorguard/internal/auth"
	"github.com/example/proctorguard/internal/extractor"
	"github.com/example/proctorguard/internal/logging"
	"github.com/example/proctorguard/internal/usecase"
)

// MaxUploadSize bounds uploaded frame payloads.
const MaxUploadSize = 8 << 20

// Camera captures arrive either as JPEG or PNG; anything else is rejected
// before it reaches the extractor.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ProctorCheckRequest is the validated body of a proctoring check. The user
// is taken from the bearer token, never from the body.
type ProctorCheckRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Image     string `json:"image" binding:"required"`
}

// BlockRequest is the validated body of a block request.
type BlockRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Reason string `json:"reason"`
}

// UnblockRequest is the validated body of an unblock request.
type UnblockRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// RegisterRoutes wires the HTTP handlers to the Gin router.
func RegisterRoutes(router *gin.Engine, verification *usecase.VerificationUseCase, proctor *usecase.ProctorUseCase, blocks *usecase.BlockPolicy, authMiddleware gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := router.Group("/", authMiddleware)

	authed.POST("/enroll", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		data, ok := readImageUpload(c)
		if !ok {
			return
		}

		if err := verification.Enroll(c.Request.Context(), userID, data); err != nil {
			respondUsecaseError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "reference enrolled"})
	})

	authed.POST("/verify", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		data, ok := readImageUpload(c)
		if !ok {
			return
		}

		requestID, result, err := verification.Verify(c.Request.Context(), userID, data)
		if err != nil {
			respondUsecaseError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id": requestID,
			"verified":   result.Verified,
			"distance":   result.Distance,
		})
	})

	authed.GET("/verify/result/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		requestID := c.Param("id")
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}

		attempt, err := verification.GetResult(c.Request.Context(), userID, requestID)
		if err != nil {
			respondLookupError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id": attempt.RequestID,
			"user_id":    attempt.UserID,
			"distance":   attempt.Distance,
			"verified":   attempt.Verified,
			"created_at": attempt.CreatedAt,
		})
	})

	authed.GET("/verify/replays/:id", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		requestID := c.Param("id")
		if requestID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}

		report, err := verification.FindReplays(c.Request.Context(), userID, requestID)
		if err != nil {
			respondLookupError(c, err)
			return
		}

		matches := make([]gin.H, 0, len(report.Matches))
		for _, m := range report.Matches {
			matches = append(matches, gin.H{
				"request_id": m.RequestID,
				"verified":   m.Verified,
				"created_at": m.CreatedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"request_id":   report.Attempt.RequestID,
			"replay_count": len(matches),
			"matches":      matches,
		})
	})

	authed.POST("/proctor/check", func(c *gin.Context) {
		userID, ok := auth.GetUserID(c.Request.Context())
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing identity"})
			return
		}

		var req ProctorCheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "session_id and image are required"})
			return
		}

		data, err := decodeImagePayload(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "image is not valid base64"})
			return
		}

		result, err := proctor.Check(c.Request.Context(), userID, req.SessionID, data)
		if err != nil {
			respondProctorError(c, err)
			return
		}

		response := gin.H{"status": string(result.Status)}
		if result.Distance != nil {
			response["distance"] = *result.Distance
		}
		c.JSON(http.StatusOK, response)
	})

	authed.POST("/block", func(c *gin.Context) {
		var req BlockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		if err := blocks.Block(c.Request.Context(), req.UserID, req.Reason); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to block user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "user blocked"})
	})

	authed.POST("/unblock", func(c *gin.Context) {
		var req UnblockRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		if err := blocks.Unblock(c.Request.Context(), req.UserID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unblock user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "user unblocked"})
	})

	authed.GET("/blocked/:user_id", func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}

		blocked, err := blocks.IsBlocked(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check block state"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"is_blocked": blocked})
	})

	authed.GET("/admin/blocked", func(c *gin.Context) {
		list, err := blocks.ListBlocked(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list blocked users"})
			return
		}

		out := make([]gin.H, 0, len(list))
		for _, b := range list {
			out = append(out, gin.H{
				"user_id":    b.UserID,
				"reason":     b.Reason,
				"blocked_at": b.BlockedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"blocked": out})
	})

	authed.GET("/admin/events", func(c *gin.Context) {
		userID := c.Query("user_id")
		sessionID := c.Query("session_id")
		if userID == "" || sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and session_id are required"})
			return
		}

		events, err := proctor.SessionEvents(c.Request.Context(), userID, sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list events"})
			return
		}

		out := make([]gin.H, 0, len(events))
		for _, e := range events {
			entry := gin.H{
				"event_id":   e.EventID,
				"type":       e.Type,
				"created_at": e.CreatedAt,
			}
			if e.Distance != nil {
				entry["distance"] = *e.Distance
			}
			out = append(out, entry)
		}
		c.JSON(http.StatusOK, gin.H{"events": out})
	})

	authed.GET("/metrics/summary", func(c *gin.Context) {
		summary, err := proctor.GetMetricsSummary(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate metrics"})
			return
		}
		c.JSON(http.StatusOK, summary)
	})
}

// readImageUpload validates and reads the multipart image field, writing the
// error response itself when validation fails.
func readImageUpload(c *gin.Context) ([]byte, bool) {
	if c.Request.ContentLength > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
		return nil, false
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return nil, false
	}
	if file.Size > MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds upload limit"})
		return nil, false
	}
	if !allowedImageTypes[partContentType(file)] {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only JPEG and PNG images are allowed"})
		return nil, false
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
		return nil, false
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return nil, false
	}
	return data, true
}

func partContentType(file *multipart.FileHeader) string {
	contentType := file.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// decodeImagePayload accepts either a bare base64 string or a data URI as
// submitted by browser capture code.
func decodeImagePayload(payload string) ([]byte, error) {
	if idx := strings.Index(payload, "base64,"); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+len("base64,"):]
	}
	return base64.StdEncoding.DecodeString(payload)
}

// respondLookupError keeps a missing row distinct from a persistence outage:
// only the former reads as "the caller asked for something that isn't there".
func respondLookupError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load result"})
}

func respondUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoReference):
		c.JSON(http.StatusConflict, gin.H{"error": "setup incomplete: no enrolled face reference"})
	case errors.Is(err, usecase.ErrNoFaceDetected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no face detected in image"})
	case errors.Is(err, extractor.ErrImageUndecodable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "image could not be decoded"})
	case isExtractionFailure(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": "face extraction unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// respondProctorError keeps the proctoring response shape: failures carry a
// status of "error" so callers can distinguish them from classification
// outcomes.
func respondProctorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrNoReference):
		c.JSON(http.StatusConflict, gin.H{"status": "error", "error": "setup incomplete: no enrolled face reference"})
	case errors.Is(err, extractor.ErrImageUndecodable):
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "error": "image could not be decoded"})
	case isExtractionFailure(err):
		c.JSON(http.StatusBadGateway, gin.H{"status": "error", "error": "face extraction unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": "proctor check failed"})
	}
}

// isExtractionFailure distinguishes extractor outages, which the caller may
// retry by resubmitting the frame, from persistence failures.
func isExtractionFailure(err error) bool {
	var opErr *logging.OperationError
	return errors.As(err, &opErr) && strings.HasPrefix(opErr.Operation, "grpcclient.")
}
