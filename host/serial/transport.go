package serial

import (
	"fmt"
	"sync"
	"time"
)

const (
	// connectRetryDelay paces reopen attempts while the panel is absent.
	connectRetryDelay = 2 * time.Second

	// resetSettleDelay waits out the board reset that opening the port
	// can trigger, so the greeting is not lost.
	resetSettleDelay = 2 * time.Second
)

// Transport keeps the panel link alive across unplugs: opening retries
// until it succeeds, and reads and writes reconnect on failure instead
// of surfacing the error. A line scanner on top survives reconnects.
type Transport struct {
	cfg      *Config
	greeting string

	mu   sync.Mutex // guards port; held across writes, not reads
	port Port

	// open is replaceable for tests.
	open       func(cfg *Config) (Port, error)
	retryDelay time.Duration
	settle     time.Duration
}

// NewTransport creates a transport for cfg. greeting, if non-empty, is
// sent after every successful (re)connect.
func NewTransport(cfg *Config, greeting string) *Transport {
	return &Transport{
		cfg:        cfg,
		greeting:   greeting,
		open:       Open,
		retryDelay: connectRetryDelay,
		settle:     resetSettleDelay,
	}
}

// Connect opens the port, retrying until it succeeds.
func (t *Transport) Connect() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.connectLocked()
}

func (t *Transport) connectLocked() {
	for {
		port, err := t.open(t.cfg)
		if err == nil {
			time.Sleep(t.settle)
			t.port = port
			if t.greeting != "" {
				port.Write([]byte(t.greeting + "\n"))
			}
			fmt.Printf("Serial link ready on %s\n", t.cfg.Device)
			return
		}
		fmt.Printf("Failed to open %s (%v), retrying in %v\n", t.cfg.Device, err, t.retryDelay)
		time.Sleep(t.retryDelay)
	}
}

func (t *Transport) dropLocked() {
	if t.port != nil {
		t.port.Close()
		t.port = nil
	}
}

// Write sends data, reconnecting and retrying once on failure.
func (t *Transport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		t.connectLocked()
	}
	n, err := t.port.Write(p)
	if err == nil {
		return n, nil
	}
	fmt.Printf("Serial write failed (%v), reconnecting\n", err)
	t.dropLocked()
	t.connectLocked()
	return t.port.Write(p)
}

// Read blocks until data arrives, reconnecting on any read error so
// the caller's read loop never ends while the host runs.
func (t *Transport) Read(p []byte) (int, error) {
	for {
		t.mu.Lock()
		if t.port == nil {
			t.connectLocked()
		}
		port := t.port
		t.mu.Unlock()

		n, err := port.Read(p)
		if err == nil {
			return n, nil
		}
		fmt.Printf("Serial read failed (%v), reconnecting\n", err)

		t.mu.Lock()
		// A concurrent Write may already have swapped the port.
		if t.port == port {
			t.dropLocked()
		}
		t.mu.Unlock()
	}
}

// Close shuts the underlying port.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}
