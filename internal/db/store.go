package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/vbo/internal/geo"
	"github.com/banshee-data/vbo/internal/nmea"
	"github.com/banshee-data/vbo/internal/vbo"
)

// Session is one capture run: a named sequence of GPS samples recorded
// between starting and stopping the logger.
type Session struct {
	SessionID string
	Name      string
	Comment   string
	CreatedAt time.Time
}

// CreateSession inserts a new session with a generated id.
func (db *DB) CreateSession(name, comment string) (*Session, error) {
	s := &Session{
		SessionID: uuid.New().String(),
		Name:      name,
		Comment:   comment,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := db.Exec(`
		INSERT INTO sessions (session_id, name, comment, created_at)
		VALUES (?, ?, ?, ?)`,
		s.SessionID, s.Name, s.Comment, s.CreatedAt.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return s, nil
}

// Session returns a single session by id.
func (db *DB) Session(sessionID string) (*Session, error) {
	row := db.QueryRow(`
		SELECT session_id, name, comment, created_at
		FROM sessions WHERE session_id = ?`, sessionID)

	var s Session
	var createdAt int64
	if err := row.Scan(&s.SessionID, &s.Name, &s.Comment, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s not found", sessionID)
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	s.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &s, nil
}

// Sessions lists all sessions, newest first.
func (db *DB) Sessions() ([]*Session, error) {
	rows, err := db.Query(`
		SELECT session_id, name, comment, created_at
		FROM sessions ORDER BY created_at DESC, session_id`)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		var s Session
		var createdAt int64
		if err := rows.Scan(&s.SessionID, &s.Name, &s.Comment, &createdAt); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		s.CreatedAt = time.Unix(createdAt, 0).UTC()
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// RecordFix appends one GPS fix to a session.
func (db *DB) RecordFix(sessionID string, f *nmea.Fix) error {
	_, err := db.Exec(`
		INSERT INTO samples (
			session_id, satellites, tod_centis,
			lat_degrees, lat_minutes, lat_seconds, lat_bearing,
			lon_degrees, lon_minutes, lon_seconds, lon_bearing,
			velocity_kmh, heading_deg, height_m
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, f.Satellites, f.Time.SinceMidnight(),
		f.Latitude.Degrees(), f.Latitude.Minutes(), f.Latitude.Seconds(), string(f.Latitude.Bearing()),
		f.Longitude.Degrees(), f.Longitude.Minutes(), f.Longitude.Seconds(), string(f.Longitude.Bearing()),
		f.VelocityKmh, f.Heading, f.Height,
	)
	if err != nil {
		return fmt.Errorf("insert sample: %w", err)
	}
	return nil
}

// SessionFixes returns a session's samples in recording order.
func (db *DB) SessionFixes(sessionID string) ([]*nmea.Fix, error) {
	rows, err := db.Query(`
		SELECT satellites, tod_centis,
		       lat_degrees, lat_minutes, lat_seconds, lat_bearing,
		       lon_degrees, lon_minutes, lon_seconds, lon_bearing,
		       velocity_kmh, heading_deg, height_m
		FROM samples WHERE session_id = ? ORDER BY sample_id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var fixes []*nmea.Fix
	for rows.Next() {
		var (
			f              nmea.Fix
			todCentis      int
			latDeg, latMin int
			latSec         float64
			latHemi        string
			lonDeg, lonMin int
			lonSec         float64
			lonHemi        string
		)
		if err := rows.Scan(
			&f.Satellites, &todCentis,
			&latDeg, &latMin, &latSec, &latHemi,
			&lonDeg, &lonMin, &lonSec, &lonHemi,
			&f.VelocityKmh, &f.Heading, &f.Height,
		); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}

		if latHemi == "" || lonHemi == "" {
			return nil, fmt.Errorf("sample with empty hemisphere in session %s", sessionID)
		}
		if f.Time, err = vbo.TimeSinceMidnight(todCentis); err != nil {
			return nil, fmt.Errorf("sample time: %w", err)
		}
		if f.Latitude, err = geo.NewDMS(latDeg, latMin, latSec, geo.Bearing(latHemi[0])); err != nil {
			return nil, fmt.Errorf("sample latitude: %w", err)
		}
		if f.Longitude, err = geo.NewDMS(lonDeg, lonMin, lonSec, geo.Bearing(lonHemi[0])); err != nil {
			return nil, fmt.Errorf("sample longitude: %w", err)
		}
		fixes = append(fixes, &f)
	}
	return fixes, rows.Err()
}
