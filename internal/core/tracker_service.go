package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"lactamira.uz/backend/internal/store"
)

// DocumentCategories is the fixed vocabulary for document records.
var DocumentCategories = []string{"medical", "vaccination", "prescription", "lab-results", "other"}

// TrackerService owns the per-user health records: the persisted profile,
// guidance history, breastfeeding log, growth measurements, cycle entries
// and document metadata.
type TrackerService struct {
	dbStore *store.SQLiteStore
}

func NewTrackerService(db *store.SQLiteStore) *TrackerService {
	return &TrackerService{dbStore: db}
}

func (s *TrackerService) GetUserByExternalID(externalUserID string) (*store.User, error) {
	return s.dbStore.GetUserByExternalID(externalUserID)
}

func (s *TrackerService) CreateUser(externalUserID, passwordHash string) (*store.User, error) {
	return s.dbStore.CreateUser(externalUserID, passwordHash)
}

// SaveProfile validates, normalizes and persists a user's profile.
func (s *TrackerService) SaveProfile(userID int64, p *Profile) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return s.dbStore.SaveProfile(userID, string(raw))
}

// GetProfile returns the user's persisted profile, or nil when none exists.
func (s *TrackerService) GetProfile(userID int64) (*Profile, error) {
	raw, err := s.dbStore.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &p, nil
}

// SaveGuidance records a generated document in the user's history.
func (s *TrackerService) SaveGuidance(userID int64, doc GuidanceDocument) error {
	return s.dbStore.SaveGuidance(&store.GuidanceRecord{
		UserID:   userID,
		Language: string(doc.Language),
		Content:  doc.Text,
		Fallback: doc.Fallback,
	})
}

func (s *TrackerService) GetLatestGuidance(userID int64) (*store.GuidanceRecord, error) {
	return s.dbStore.GetLatestGuidance(userID)
}

func (s *TrackerService) AddFeeding(userID int64, side string, durationMin int, startedAt time.Time, note string) (*store.Feeding, error) {
	switch side {
	case "left", "right", "both":
	default:
		return nil, fmt.Errorf("side must be one of left, right, both; got %q", side)
	}
	if durationMin <= 0 {
		return nil, fmt.Errorf("duration_min must be positive")
	}
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	f := &store.Feeding{
		UserID:      userID,
		Side:        side,
		DurationMin: durationMin,
		StartedAt:   startedAt,
		Note:        strings.TrimSpace(note),
	}
	if err := s.dbStore.CreateFeeding(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *TrackerService) GetFeedings(userID int64) ([]store.Feeding, error) {
	return s.dbStore.GetFeedingsByUserID(userID, 100, 0)
}

func (s *TrackerService) AddGrowthMeasurement(userID int64, m *store.GrowthMeasurement) error {
	if m.WeightKg <= 0 && m.HeightCm <= 0 {
		return fmt.Errorf("a measurement needs at least a weight or a height")
	}
	if m.WeightKg < 0 || m.HeightCm < 0 {
		return fmt.Errorf("weight and height cannot be negative")
	}
	if m.WeightPercentile < 0 || m.WeightPercentile > 100 || m.HeightPercentile < 0 || m.HeightPercentile > 100 {
		return fmt.Errorf("percentiles must be between 0 and 100")
	}
	if m.MeasuredAt.IsZero() {
		m.MeasuredAt = time.Now()
	}
	m.UserID = userID
	return s.dbStore.CreateGrowthMeasurement(m)
}

func (s *TrackerService) GetGrowthMeasurements(userID int64) ([]store.GrowthMeasurement, error) {
	return s.dbStore.GetGrowthMeasurementsByUserID(userID, 100, 0)
}

func (s *TrackerService) AddCycleEntry(userID int64, e *store.CycleEntry) error {
	if e.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if e.DurationDays <= 0 || e.DurationDays > 60 {
		return fmt.Errorf("duration_days must be between 1 and 60")
	}
	e.UserID = userID
	e.Symptoms = strings.TrimSpace(e.Symptoms)
	e.Note = strings.TrimSpace(e.Note)
	return s.dbStore.CreateCycleEntry(e)
}

func (s *TrackerService) GetCycleEntries(userID int64) ([]store.CycleEntry, error) {
	return s.dbStore.GetCycleEntriesByUserID(userID, 100, 0)
}

func (s *TrackerService) AddDocument(userID int64, d *store.Document) error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return fmt.Errorf("title is required")
	}
	if !validDocumentCategory(d.Category) {
		return fmt.Errorf("unknown document category %q", d.Category)
	}
	d.UserID = userID
	d.Note = strings.TrimSpace(d.Note)
	return s.dbStore.CreateDocument(d)
}

func (s *TrackerService) GetDocuments(userID int64) ([]store.Document, error) {
	return s.dbStore.GetDocumentsByUserID(userID, 100, 0)
}

func validDocumentCategory(category string) bool {
	for _, c := range DocumentCategories {
		if c == category {
			return true
		}
	}
	return false
}
