package services

import (
	"log"
	"net/http"

	"gorm.io/gorm"

	"studio-booking-server/models"
	"studio-booking-server/utils"
)

// SessionService keeps per-login device records. On each login all of
// the user's prior sessions lose currency before the new one is
// inserted, so at most one row per user has is_current set.
type SessionService struct {
	db *gorm.DB
}

// NewSessionService creates a new session service
func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

// RecordLogin clears previously-current sessions for the user and
// inserts a new current session captured from the request. The two
// writes are sequential; a failed insert after a successful clear is
// logged and surfaced, not rolled back.
func (s *SessionService) RecordLogin(userID uint, r *http.Request) (*models.UserSession, error) {
	if err := s.db.Model(&models.UserSession{}).
		Where("user_id = ? AND is_current = ?", userID, true).
		Update("is_current", false).Error; err != nil {
		return nil, err
	}

	deviceName := r.Header.Get("X-Device-Name")
	if deviceName == "" {
		deviceName = "Unknown device"
	}

	session := models.UserSession{
		UserID:     userID,
		DeviceName: deviceName,
		UserAgent:  r.UserAgent(),
		IPAddress:  utils.ClientIP(r),
		IsCurrent:  true,
	}

	if err := s.db.Create(&session).Error; err != nil {
		log.Printf("❌ Failed to record session for user %d: %v", userID, err)
		return nil, err
	}

	return &session, nil
}

// ListSessions returns the user's sessions newest-first.
func (s *SessionService) ListSessions(userID uint) ([]models.UserSession, error) {
	var sessions []models.UserSession
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}
