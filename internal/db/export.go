package db

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/vbo/internal/fsutil"
	"github.com/banshee-data/vbo/internal/nmea"
	"github.com/banshee-data/vbo/internal/vbo"
)

// ExportSession builds a VBOX data file document from a stored session: the
// standard channel set, one row per recorded fix, the session comment plus
// a computed run summary, and the session start time as the file creation
// time.
func (db *DB) ExportSession(sessionID string) (*vbo.Document, error) {
	session, err := db.Session(sessionID)
	if err != nil {
		return nil, err
	}
	fixes, err := db.SessionFixes(sessionID)
	if err != nil {
		return nil, err
	}

	doc := vbo.NewDocument()
	doc.SetCreationTime(session.CreatedAt)
	doc.SetComment(exportComment(session, fixes))

	for _, c := range nmea.Channels() {
		if err := doc.AddChannel(c); err != nil {
			return nil, fmt.Errorf("export session %s: %w", sessionID, err)
		}
	}
	for _, f := range fixes {
		doc.AddSample(f.Row())
	}
	return doc, nil
}

// WriteSessionFile exports a session and writes the rendered file to path
// on the given filesystem.
func (db *DB) WriteSessionFile(fsys fsutil.FileSystem, sessionID, path string) error {
	doc, err := db.ExportSession(sessionID)
	if err != nil {
		return err
	}

	f, err := fsys.Create(path)
	if err != nil {
		return fmt.Errorf("export session %s: %w", sessionID, err)
	}
	if err := doc.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("export session %s: %w", sessionID, err)
	}
	return f.Close()
}

func exportComment(session *Session, fixes []*nmea.Fix) string {
	var sb strings.Builder
	sb.WriteString(session.Name)
	if session.Comment != "" {
		sb.WriteString("\n")
		sb.WriteString(session.Comment)
	}
	sb.WriteString("\n")
	sb.WriteString(runSummary(fixes))
	return sb.String()
}

// runSummary is a short per-run statistics line carried in the comments
// section of the exported file.
func runSummary(fixes []*nmea.Fix) string {
	if len(fixes) == 0 {
		return "0 samples"
	}

	speeds := make([]float64, len(fixes))
	for i, f := range fixes {
		speeds[i] = f.VelocityKmh
	}

	return fmt.Sprintf("%d samples, velocity max %.3f km/h, mean %.3f km/h",
		len(fixes), floats.Max(speeds), stat.Mean(speeds, nil))
}
