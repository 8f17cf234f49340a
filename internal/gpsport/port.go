// Package gpsport reads NMEA sentence lines from a serial GPS receiver.
package gpsport

import (
	"bufio"
	"context"
	"io"

	"go.bug.st/serial"

	"github.com/banshee-data/vbo/internal/monitoring"
)

// DefaultBaudRate suits most consumer GPS modules; older receivers run at
// 4800.
const DefaultBaudRate = 9600

// PortInterface is the read side of a GPS serial port. Monitor owns the
// port until the context is cancelled; received lines arrive on Events.
type PortInterface interface {
	Events() <-chan string
	Monitor(ctx context.Context) error
	Close() error
}

// Port is a GPS receiver attached to a real serial port.
type Port struct {
	serial.Port
	events chan string
}

// NewPort opens the named serial port in 8N1 mode at the given baud rate.
func NewPort(portName string, baudRate int) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: 1,
	}

	port, err := serial.Open(portName, mode)
	if err != nil {
		return nil, err
	}

	return &Port{Port: port, events: make(chan string)}, nil
}

// Events returns the channel of received sentence lines.
func (p *Port) Events() <-chan string {
	return p.events
}

// Monitor reads lines from the serial port and sends them to the events
// channel until the context is cancelled or the port fails.
func (p *Port) Monitor(ctx context.Context) error {
	defer p.Close()
	scan := bufio.NewScanner(p.Port)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
			if !scan.Scan() {
				return scan.Err()
			}
			line := scan.Text()

			select {
			case p.events <- line:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Close closes the serial port.
func (p *Port) Close() error {
	return p.Port.Close()
}

// MockPort replays sentence lines from a reader, for tests and for dev mode
// capture from a fixtures file.
type MockPort struct {
	Data       io.Reader
	EventsChan chan string
}

// NewMockPort returns a mock port replaying from r.
func NewMockPort(r io.Reader) *MockPort {
	return &MockPort{Data: r, EventsChan: make(chan string)}
}

// Events returns the channel of replayed lines.
func (m *MockPort) Events() <-chan string {
	return m.EventsChan
}

// Monitor replays every line from the reader, then closes the events
// channel so consumers of a finite fixture drain cleanly.
func (m *MockPort) Monitor(ctx context.Context) error {
	defer close(m.EventsChan)
	scan := bufio.NewScanner(m.Data)

	for scan.Scan() {
		select {
		case m.EventsChan <- scan.Text():
		case <-ctx.Done():
			return nil
		}
	}
	if err := scan.Err(); err != nil {
		monitoring.Logf("gpsport: fixture read error: %v", err)
		return err
	}
	return nil
}

// Close is a no-op on the mock port.
func (m *MockPort) Close() error {
	return nil
}
