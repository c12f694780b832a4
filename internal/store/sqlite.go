package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err = store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS users (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        external_user_id TEXT UNIQUE NOT NULL,
        password_hash TEXT NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP
    );

    CREATE TABLE IF NOT EXISTS profiles (
        user_id INTEGER PRIMARY KEY,
        profile_json TEXT NOT NULL,
        updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS guidance_documents (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        language TEXT NOT NULL,
        content TEXT NOT NULL,
        fallback BOOLEAN DEFAULT FALSE,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS feedings (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        side TEXT NOT NULL CHECK (side IN ('left', 'right', 'both')),
        duration_min INTEGER NOT NULL,
        started_at DATETIME NOT NULL,
        note TEXT DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS growth_measurements (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        weight_kg REAL NOT NULL,
        height_cm REAL NOT NULL,
        weight_percentile INTEGER DEFAULT 0,
        height_percentile INTEGER DEFAULT 0,
        measured_at DATETIME NOT NULL,
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS cycle_entries (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        start_date DATETIME NOT NULL,
        duration_days INTEGER NOT NULL,
        symptoms TEXT DEFAULT '',
        note TEXT DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );

    CREATE TABLE IF NOT EXISTS documents (
        id TEXT PRIMARY KEY, -- UUID
        user_id INTEGER NOT NULL,
        title TEXT NOT NULL,
        category TEXT NOT NULL,
        note TEXT DEFAULT '',
        created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
        FOREIGN KEY (user_id) REFERENCES users (id)
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// User methods

func (s *SQLiteStore) GetUserByExternalID(externalUserID string) (*User, error) {
	var user User
	err := s.db.QueryRow("SELECT id, external_user_id, password_hash, created_at FROM users WHERE external_user_id = ?", externalUserID).Scan(&user.ID, &user.ExternalUserID, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (s *SQLiteStore) CreateUser(externalUserID, passwordHash string) (*User, error) {
	res, err := s.db.Exec("INSERT INTO users (external_user_id, password_hash) VALUES (?, ?)", externalUserID, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	id, _ := res.LastInsertId()
	return s.getUserByID(id)
}

func (s *SQLiteStore) getUserByID(id int64) (*User, error) {
	var user User
	err := s.db.QueryRow("SELECT id, external_user_id, password_hash, created_at FROM users WHERE id = ?", id).Scan(&user.ID, &user.ExternalUserID, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// Profile methods. The profile is stored as its wire-format JSON blob; the
// service layer owns the shape.

func (s *SQLiteStore) SaveProfile(userID int64, profileJSON string) error {
	_, err := s.db.Exec(`
        INSERT INTO profiles (user_id, profile_json, updated_at) VALUES (?, ?, ?)
        ON CONFLICT(user_id) DO UPDATE SET profile_json = excluded.profile_json, updated_at = excluded.updated_at`,
		userID, profileJSON, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetProfile(userID int64) (string, error) {
	var profileJSON string
	err := s.db.QueryRow("SELECT profile_json FROM profiles WHERE user_id = ?", userID).Scan(&profileJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil // No profile yet
		}
		return "", fmt.Errorf("failed to query profile: %w", err)
	}
	return profileJSON, nil
}

// Guidance methods

func (s *SQLiteStore) SaveGuidance(rec *GuidanceRecord) error {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now()
	_, err := s.db.Exec("INSERT INTO guidance_documents (id, user_id, language, content, fallback, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		rec.ID, rec.UserID, rec.Language, rec.Content, rec.Fallback, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert guidance document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetLatestGuidance(userID int64) (*GuidanceRecord, error) {
	var rec GuidanceRecord
	err := s.db.QueryRow("SELECT id, user_id, language, content, fallback, created_at FROM guidance_documents WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1", userID).
		Scan(&rec.ID, &rec.UserID, &rec.Language, &rec.Content, &rec.Fallback, &rec.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // No guidance yet
		}
		return nil, fmt.Errorf("failed to query latest guidance: %w", err)
	}
	return &rec, nil
}

// Feeding methods

func (s *SQLiteStore) CreateFeeding(f *Feeding) error {
	f.ID = uuid.NewString()
	f.CreatedAt = time.Now()
	_, err := s.db.Exec("INSERT INTO feedings (id, user_id, side, duration_min, started_at, note, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		f.ID, f.UserID, f.Side, f.DurationMin, f.StartedAt, f.Note, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert feeding: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetFeedingsByUserID(userID int64, limit, offset int) ([]Feeding, error) {
	rows, err := s.db.Query("SELECT id, user_id, side, duration_min, started_at, note, created_at FROM feedings WHERE user_id = ? ORDER BY started_at DESC LIMIT ? OFFSET ?",
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedings: %w", err)
	}
	defer rows.Close()

	var feedings []Feeding
	for rows.Next() {
		var f Feeding
		if err := rows.Scan(&f.ID, &f.UserID, &f.Side, &f.DurationMin, &f.StartedAt, &f.Note, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan feeding: %w", err)
		}
		feedings = append(feedings, f)
	}
	return feedings, rows.Err()
}

// Growth methods

func (s *SQLiteStore) CreateGrowthMeasurement(m *GrowthMeasurement) error {
	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()
	_, err := s.db.Exec("INSERT INTO growth_measurements (id, user_id, weight_kg, height_cm, weight_percentile, height_percentile, measured_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		m.ID, m.UserID, m.WeightKg, m.HeightCm, m.WeightPercentile, m.HeightPercentile, m.MeasuredAt, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert growth measurement: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetGrowthMeasurementsByUserID(userID int64, limit, offset int) ([]GrowthMeasurement, error) {
	rows, err := s.db.Query("SELECT id, user_id, weight_kg, height_cm, weight_percentile, height_percentile, measured_at, created_at FROM growth_measurements WHERE user_id = ? ORDER BY measured_at DESC LIMIT ? OFFSET ?",
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query growth measurements: %w", err)
	}
	defer rows.Close()

	var measurements []GrowthMeasurement
	for rows.Next() {
		var m GrowthMeasurement
		if err := rows.Scan(&m.ID, &m.UserID, &m.WeightKg, &m.HeightCm, &m.WeightPercentile, &m.HeightPercentile, &m.MeasuredAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan growth measurement: %w", err)
		}
		measurements = append(measurements, m)
	}
	return measurements, rows.Err()
}

// Cycle methods

func (s *SQLiteStore) CreateCycleEntry(e *CycleEntry) error {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	_, err := s.db.Exec("INSERT INTO cycle_entries (id, user_id, start_date, duration_days, symptoms, note, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		e.ID, e.UserID, e.StartDate, e.DurationDays, e.Symptoms, e.Note, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert cycle entry: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetCycleEntriesByUserID(userID int64, limit, offset int) ([]CycleEntry, error) {
	rows, err := s.db.Query("SELECT id, user_id, start_date, duration_days, symptoms, note, created_at FROM cycle_entries WHERE user_id = ? ORDER BY start_date DESC LIMIT ? OFFSET ?",
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query cycle entries: %w", err)
	}
	defer rows.Close()

	var entries []CycleEntry
	for rows.Next() {
		var e CycleEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.StartDate, &e.DurationDays, &e.Symptoms, &e.Note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cycle entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Document methods

func (s *SQLiteStore) CreateDocument(d *Document) error {
	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()
	_, err := s.db.Exec("INSERT INTO documents (id, user_id, title, category, note, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		d.ID, d.UserID, d.Title, d.Category, d.Note, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert document: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetDocumentsByUserID(userID int64, limit, offset int) ([]Document, error) {
	rows, err := s.db.Query("SELECT id, user_id, title, category, note, created_at FROM documents WHERE user_id = ? ORDER BY created_at DESC LIMIT ? OFFSET ?",
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.UserID, &d.Title, &d.Category, &d.Note, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
