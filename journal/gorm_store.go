package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/quailyquaily/datelog/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultTags seeds the catalog the first time the database is created.
var DefaultTags = []string{
	"Good Conversation", "Shared Hobbies", "Great Sense of Humor",
	"Attractive", "Good Food", "Romantic Connection",
	"Awkward Silence", "No Chemistry", "Red Flag", "Casual/Friends",
	"Intellectual", "Outdoorsy", "Artsy",
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// AddEntry persists the entry row and one media row per attachment in a
// single transaction. Validation failures write nothing.
func (s *GormStore) AddEntry(ctx context.Context, in NewEntry) (int64, error) {
	if strings.TrimSpace(in.PartnerName) == "" {
		return 0, ErrPartnerRequired
	}

	row := models.Entry{
		Date:        strings.TrimSpace(in.Date),
		PartnerName: strings.TrimSpace(in.PartnerName),
		SocialMedia: strings.TrimSpace(in.SocialMedia),
		Notes:       in.Notes,
		Tags:        JoinTags(in.Tags),
		CreatedAt:   time.Now().Unix(),
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert entry: %w", err)
		}
		for _, m := range in.Media {
			mr := models.Media{
				EntryID:  row.ID,
				FilePath: m.Path,
				Kind:     string(m.Kind),
			}
			if err := tx.Create(&mr).Error; err != nil {
				return fmt.Errorf("insert media: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return row.ID, nil
}

// ListEntries returns all entries sorted by date descending. The sort is
// lexicographic over the stored date string, so it is chronological only for
// zero-padded ISO dates.
func (s *GormStore) ListEntries(ctx context.Context) ([]Entry, error) {
	var rows []models.Entry
	err := s.DB.WithContext(ctx).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, modelToEntry(r))
	}
	return out, nil
}

// MediaFor returns an entry's attachments in insertion order.
func (s *GormStore) MediaFor(ctx context.Context, entryID int64) ([]Attachment, error) {
	var rows []models.Media
	err := s.DB.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Attachment, 0, len(rows))
	for _, r := range rows {
		out = append(out, Attachment{Path: r.FilePath, Kind: MediaKind(r.Kind)})
	}
	return out, nil
}

// SearchEntries matches query as a case-insensitive substring of the partner
// name, notes, date, or tags column. An empty query matches everything.
func (s *GormStore) SearchEntries(ctx context.Context, query string) ([]Entry, error) {
	pattern := "%" + query + "%"
	var rows []models.Entry
	err := s.DB.WithContext(ctx).
		Where("partner_name LIKE ? OR notes LIKE ? OR date LIKE ? OR tags LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		out = append(out, modelToEntry(r))
	}
	return out, nil
}

func (s *GormStore) ListTags(ctx context.Context) ([]string, error) {
	var labels []string
	err := s.DB.WithContext(ctx).
		Model(&models.CustomTag{}).
		Order("tag_name ASC").
		Pluck("tag_name", &labels).Error
	if err != nil {
		return nil, err
	}
	return labels, nil
}

func (s *GormStore) AddTag(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return fmt.Errorf("empty tag label")
	}
	err := s.DB.WithContext(ctx).Create(&models.CustomTag{Label: label}).Error
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateTag
		}
		return err
	}
	return nil
}

// DeleteTag is idempotent: removing an absent label is not an error.
func (s *GormStore) DeleteTag(ctx context.Context, label string) error {
	return s.DB.WithContext(ctx).
		Where("tag_name = ?", label).
		Delete(&models.CustomTag{}).Error
}

// EnsureDefaultTags seeds the default vocabulary when the catalog is empty.
func (s *GormStore) EnsureDefaultTags(ctx context.Context) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.CustomTag{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rows := make([]models.CustomTag, 0, len(DefaultTags))
	for _, t := range DefaultTags {
		rows = append(rows, models.CustomTag{Label: t})
	}
	return s.DB.WithContext(ctx).Create(&rows).Error
}

// GetProfile returns the singleton profile, or a zero Profile when none has
// been saved yet. Absence is not an error.
func (s *GormStore) GetProfile(ctx context.Context) (Profile, error) {
	var row models.UserProfile
	err := s.DB.WithContext(ctx).
		Where("id = ?", models.ProfileRowID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Profile{}, nil
		}
		return Profile{}, err
	}
	return Profile{
		Name:      row.Name,
		Age:       row.Age,
		Gender:    row.Gender,
		Goals:     row.Goals,
		Interests: row.Interests,
	}, nil
}

// PutProfile upserts the singleton row, overwriting every field.
func (s *GormStore) PutProfile(ctx context.Context, p Profile) error {
	row := models.UserProfile{
		ID:        models.ProfileRowID,
		Name:      strings.TrimSpace(p.Name),
		Age:       p.Age,
		Gender:    strings.TrimSpace(p.Gender),
		Goals:     strings.TrimSpace(p.Goals),
		Interests: strings.TrimSpace(p.Interests),
	}
	return s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"name":         row.Name,
				"age":          row.Age,
				"gender":       row.Gender,
				"dating_goals": row.Goals,
				"interests":    row.Interests,
			}),
		}).
		Create(&row).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func modelToEntry(m models.Entry) Entry {
	return Entry{
		ID:          m.ID,
		Date:        m.Date,
		PartnerName: m.PartnerName,
		SocialMedia: m.SocialMedia,
		Notes:       m.Notes,
		Tags:        m.Tags,
		CreatedAt:   m.CreatedAt,
	}
}
