package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quailyquaily/datelog/db/models"
	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) CreateSession(ctx context.Context, title string) (int64, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultSessionTitle
	}
	row := models.ChatSession{
		Title:     title,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}
	return row.ID, nil
}

// ListSessions returns sessions newest first. The id tiebreak keeps
// same-second sessions in creation order.
func (s *GormStore) ListSessions(ctx context.Context) ([]Session, error) {
	var rows []models.ChatSession
	err := s.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Session, 0, len(rows))
	for _, r := range rows {
		out = append(out, Session{ID: r.ID, Title: r.Title, CreatedAt: r.CreatedAt})
	}
	return out, nil
}

// DeleteSession removes a session and its transcript together.
func (s *GormStore) DeleteSession(ctx context.Context, sessionID int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", sessionID).Delete(&models.ChatSession{}).Error
	})
}

// AddMessage appends to a session's transcript. The session must exist;
// appending is otherwise unconditional, errors included.
func (s *GormStore) AddMessage(ctx context.Context, sessionID int64, role, content string) error {
	var sess models.ChatSession
	err := s.DB.WithContext(ctx).Where("id = ?", sessionID).First(&sess).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSessionNotFound
		}
		return err
	}
	row := models.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().Unix(),
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// ListMessages returns a session's transcript oldest first. The id tiebreak
// keeps same-second messages in insertion order.
func (s *GormStore) ListMessages(ctx context.Context, sessionID int64) ([]Message, error) {
	var rows []models.ChatMessage
	err := s.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, Message{
			ID:        r.ID,
			SessionID: r.SessionID,
			Role:      r.Role,
			Content:   r.Content,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}
