// Command vbo-export writes a stored capture session out as a VBOX data
// file, optionally with an HTML velocity chart, and exposes schema
// migration maintenance for the capture database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/vbo/internal/db"
	"github.com/banshee-data/vbo/internal/fsutil"
	"github.com/banshee-data/vbo/internal/report"
	"github.com/banshee-data/vbo/internal/units"
	"github.com/banshee-data/vbo/internal/version"
)

var (
	dbFile       = flag.String("db", "capture.db", "capture database path")
	sessionID    = flag.String("session", "", "session id to export")
	output       = flag.String("o", "", "output .vbo path (default <session>.vbo)")
	chart        = flag.String("chart", "", "also write an HTML velocity chart to this path")
	chartUnits   = flag.String("units", units.KMH, "speed unit for the chart ("+units.GetValidUnitsString()+")")
	list         = flag.Bool("list", false, "list sessions and exit")
	migrate      = flag.String("migrate", "", "run a schema migration action (up, down, version, force) and exit")
	forceVersion = flag.Int("force-version", -1, "schema version for -migrate force")
	showVersion  = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("vbo-export %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if *migrate != "" {
		runMigrate(*dbFile, *migrate)
		return
	}

	d, err := db.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer d.Close()

	if *list {
		listSessions(d)
		return
	}

	if *sessionID == "" {
		log.Fatal("a session id is required (-session); use -list to see sessions")
	}

	path := *output
	if path == "" {
		path = *sessionID + ".vbo"
	}
	if err := d.WriteSessionFile(fsutil.OSFileSystem{}, *sessionID, path); err != nil {
		log.Fatalf("failed to export session: %v", err)
	}
	log.Printf("wrote %s", path)

	if *chart != "" {
		writeChart(d, *sessionID, *chart)
	}
}

func listSessions(d *db.DB) {
	sessions, err := d.Sessions()
	if err != nil {
		log.Fatalf("failed to list sessions: %v", err)
	}
	for _, s := range sessions {
		fmt.Printf("%s  %s  %s\n", s.SessionID, s.CreatedAt.Format("2006-01-02 15:04:05"), s.Name)
	}
}

func writeChart(d *db.DB, sessionID, path string) {
	if !units.IsValid(*chartUnits) {
		log.Fatalf("unknown unit %q (want one of %s)", *chartUnits, units.GetValidUnitsString())
	}

	fixes, err := d.SessionFixes(sessionID)
	if err != nil {
		log.Fatalf("failed to load fixes: %v", err)
	}
	speeds := make([]float64, len(fixes))
	for i, f := range fixes {
		speeds[i] = units.ConvertSpeed(f.VelocityKmh, *chartUnits)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := report.VelocityChart(f, sessionID, *chartUnits, speeds); err != nil {
		log.Fatalf("failed to render chart: %v", err)
	}
	log.Printf("wrote %s", path)
}

func runMigrate(dbFile, action string) {
	d, err := db.OpenDB(dbFile)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer d.Close()

	switch action {
	case "up":
		if err := d.MigrateUp(); err != nil {
			log.Fatalf("migrate up failed: %v", err)
		}
		log.Println("migrations applied")
	case "down":
		if err := d.MigrateDown(); err != nil {
			log.Fatalf("migrate down failed: %v", err)
		}
		log.Println("rolled back one migration")
	case "version":
		version, dirty, err := d.MigrateVersion()
		if err != nil {
			log.Fatalf("migrate version failed: %v", err)
		}
		log.Printf("schema version %d (dirty: %v)", version, dirty)
	case "force":
		if *forceVersion < 0 {
			log.Fatal("-migrate force requires -force-version")
		}
		if err := d.MigrateForce(*forceVersion); err != nil {
			log.Fatalf("migrate force failed: %v", err)
		}
		log.Printf("forced schema version %d", *forceVersion)
	default:
		log.Fatalf("unknown migrate action %q (want up, down, version or force)", action)
	}
}
