package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *SQLiteStore) *User {
	t.Helper()
	user, err := s.CreateUser("mother1", "hash")
	require.NoError(t, err)
	return user
}

func TestUserLifecycle(t *testing.T) {
	s := newTestStore(t)

	missing, err := s.GetUserByExternalID("nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	user := createTestUser(t, s)
	assert.Equal(t, "mother1", user.ExternalUserID)
	assert.Equal(t, "hash", user.PasswordHash)

	found, err := s.GetUserByExternalID("mother1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, user.ID, found.ID)

	_, err = s.CreateUser("mother1", "other")
	assert.Error(t, err, "duplicate external id must be rejected")
}

func TestProfilePersistence(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	raw, err := s.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Empty(t, raw)

	require.NoError(t, s.SaveProfile(user.ID, `{"yearOfBirth":1990}`))
	raw, err = s.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"yearOfBirth":1990}`, raw)

	// Upsert replaces the previous value
	require.NoError(t, s.SaveProfile(user.ID, `{"yearOfBirth":1991}`))
	raw, err = s.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, `{"yearOfBirth":1991}`, raw)
}

func TestGuidanceHistory(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	latest, err := s.GetLatestGuidance(user.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	first := &GuidanceRecord{UserID: user.ID, Language: "en", Content: "first", Fallback: true}
	require.NoError(t, s.SaveGuidance(first))
	assert.NotEmpty(t, first.ID)

	second := &GuidanceRecord{UserID: user.ID, Language: "ru", Content: "second"}
	require.NoError(t, s.SaveGuidance(second))

	latest, err = s.GetLatestGuidance(user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "second", latest.Content)
	assert.Equal(t, "ru", latest.Language)
	assert.False(t, latest.Fallback)
}

func TestFeedingCRUD(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	f := &Feeding{
		UserID:      user.ID,
		Side:        "both",
		DurationMin: 20,
		StartedAt:   time.Date(2026, 8, 30, 21, 0, 0, 0, time.UTC),
		Note:        "bedtime",
	}
	require.NoError(t, s.CreateFeeding(f))
	assert.NotEmpty(t, f.ID)

	feedings, err := s.GetFeedingsByUserID(user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, feedings, 1)
	assert.Equal(t, "both", feedings[0].Side)
	assert.Equal(t, 20, feedings[0].DurationMin)

	// Invalid side fails the CHECK constraint
	bad := &Feeding{UserID: user.ID, Side: "middle", DurationMin: 5, StartedAt: time.Now()}
	assert.Error(t, s.CreateFeeding(bad))
}

func TestGrowthMeasurements(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	older := &GrowthMeasurement{UserID: user.ID, WeightKg: 6.8, HeightCm: 63, MeasuredAt: time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)}
	newer := &GrowthMeasurement{UserID: user.ID, WeightKg: 7.2, HeightCm: 65, WeightPercentile: 75, HeightPercentile: 68, MeasuredAt: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, s.CreateGrowthMeasurement(older))
	require.NoError(t, s.CreateGrowthMeasurement(newer))

	measurements, err := s.GetGrowthMeasurementsByUserID(user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, measurements, 2)
	// Newest first
	assert.Equal(t, 7.2, measurements[0].WeightKg)
	assert.Equal(t, 75, measurements[0].WeightPercentile)
}

func TestCycleEntries(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	e := &CycleEntry{UserID: user.ID, StartDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), DurationDays: 5, Symptoms: "cramps"}
	require.NoError(t, s.CreateCycleEntry(e))

	entries, err := s.GetCycleEntriesByUserID(user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].DurationDays)
	assert.Equal(t, "cramps", entries[0].Symptoms)
}

func TestDocuments(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s)

	d := &Document{UserID: user.ID, Title: "Vaccination card", Category: "vaccination"}
	require.NoError(t, s.CreateDocument(d))

	docs, err := s.GetDocumentsByUserID(user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Vaccination card", docs[0].Title)

	// Records are scoped per user
	other := createOtherUser(t, s)
	docs, err = s.GetDocumentsByUserID(other.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func createOtherUser(t *testing.T, s *SQLiteStore) *User {
	t.Helper()
	user, err := s.CreateUser("mother2", "hash")
	require.NoError(t, err)
	return user
}
