// Command vbo-capture records NMEA fixes from a serial GPS receiver into a
// sqlite capture database, one session per run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/banshee-data/vbo/internal/db"
	"github.com/banshee-data/vbo/internal/gpsport"
	"github.com/banshee-data/vbo/internal/monitoring"
	"github.com/banshee-data/vbo/internal/nmea"
	"github.com/banshee-data/vbo/internal/version"
)

var (
	portName    = flag.String("port", "/dev/ttyUSB0", "GPS serial port")
	baudRate    = flag.Int("baud", gpsport.DefaultBaudRate, "GPS serial baud rate")
	dbFile      = flag.String("db", "capture.db", "capture database path")
	name        = flag.String("session", "", "session name (required)")
	comment     = flag.String("comment", "", "session comment")
	fixtures    = flag.String("dev", "", "replay NMEA lines from a fixtures file instead of a serial port")
	showVersion = flag.Bool("version", false, "print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("vbo-capture %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if *name == "" {
		log.Fatal("a session name is required (-session)")
	}

	var port gpsport.PortInterface
	if *fixtures != "" {
		f, err := os.Open(*fixtures)
		if err != nil {
			log.Fatalf("failed to open fixtures file: %v", err)
		}
		defer f.Close()
		port = gpsport.NewMockPort(f)
	} else {
		var err error
		port, err = gpsport.NewPort(*portName, *baudRate)
		if err != nil {
			log.Fatalf("failed to open GPS port %s: %v", *portName, err)
		}
	}
	defer port.Close()

	d, err := db.NewDB(*dbFile)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer d.Close()

	session, err := d.CreateSession(*name, *comment)
	if err != nil {
		log.Fatalf("failed to create session: %v", err)
	}
	monitoring.Logf("recording session %s (%s)", session.SessionID, session.Name)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := port.Monitor(ctx); err != nil && err != context.Canceled {
			monitoring.Logf("port monitor stopped: %v", err)
		}
		stop()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		recordFixes(ctx, d, session.SessionID, port.Events())
	}()

	wg.Wait()
	monitoring.Logf("session %s complete", session.SessionID)
}

// recordFixes feeds received lines through the NMEA accumulator and stores
// each completed fix. Malformed lines are logged and skipped; a GPS stream
// routinely carries sentence types and partial lines this logger does not
// consume.
func recordFixes(ctx context.Context, d *db.DB, sessionID string, events <-chan string) {
	var acc nmea.Accumulator
	recorded := 0

	for {
		select {
		case <-ctx.Done():
			monitoring.Logf("recorded %d fixes", recorded)
			return
		case line, ok := <-events:
			if !ok {
				monitoring.Logf("recorded %d fixes", recorded)
				return
			}

			fix, complete, err := acc.Feed(line)
			if err != nil {
				monitoring.Logf("skipping line %q: %v", line, err)
				continue
			}
			if !complete {
				continue
			}

			if err := d.RecordFix(sessionID, &fix); err != nil {
				monitoring.Logf("failed to record fix: %v", err)
				continue
			}
			recorded++
		}
	}
}
