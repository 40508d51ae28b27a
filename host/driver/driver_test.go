package driver

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer against the async flash-off timer.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

// newTestDriver returns a driver with a recorded launcher and flash
// durations short enough to observe in a test.
func newTestDriver(programs Programs, launchErr error) (*Driver, *syncBuffer, *[][]string) {
	port := &syncBuffer{}
	launched := &[][]string{}
	d := New(programs, port)
	d.launch = func(argv []string) error {
		*launched = append(*launched, argv)
		return launchErr
	}
	d.okDuration = 10 * time.Millisecond
	d.errDuration = 10 * time.Millisecond
	return d, port, launched
}

func TestDriverLaunchesOnDown(t *testing.T) {
	d, port, launched := newTestDriver(Programs{"2": {"xterm", "-e", "htop"}}, nil)

	d.HandleLine("BTN|2|DOWN")

	if len(*launched) != 1 || !reflect.DeepEqual((*launched)[0], []string{"xterm", "-e", "htop"}) {
		t.Fatalf("Unexpected launches: %v", *launched)
	}
	if !strings.Contains(port.String(), "LED|2|BLINK|180\n") {
		t.Errorf("Success blink not sent, port saw %q", port.String())
	}

	time.Sleep(100 * time.Millisecond)
	if !strings.Contains(port.String(), "LED|2|OFF\n") {
		t.Errorf("Flash did not end in OFF, port saw %q", port.String())
	}
}

func TestDriverIgnoresUpAndHold(t *testing.T) {
	d, port, launched := newTestDriver(Programs{"1": {"xeyes"}}, nil)

	d.HandleLine("BTN|1|UP")
	d.HandleLine("BTN|1|HOLD")

	if len(*launched) != 0 {
		t.Errorf("UP/HOLD launched programs: %v", *launched)
	}
	if port.String() != "" {
		t.Errorf("UP/HOLD wrote to the port: %q", port.String())
	}
}

func TestDriverUnmappedButtonFlashesError(t *testing.T) {
	d, port, launched := newTestDriver(Programs{"1": {"xeyes"}}, nil)

	d.HandleLine("BTN|3|DOWN")

	if len(*launched) != 0 {
		t.Errorf("Unmapped button launched: %v", *launched)
	}
	// An unmapped button gets the same error feedback as a failed launch.
	if !strings.Contains(port.String(), "LED|3|BLINK|80\n") {
		t.Errorf("Error blink not sent, port saw %q", port.String())
	}

	time.Sleep(100 * time.Millisecond)
	if !strings.Contains(port.String(), "LED|3|OFF\n") {
		t.Errorf("Flash did not end in OFF, port saw %q", port.String())
	}
}

func TestDriverFailedLaunchFlashesError(t *testing.T) {
	d, port, _ := newTestDriver(Programs{"4": {"no-such-binary"}}, errors.New("exec failed"))

	d.HandleLine("BTN|4|DOWN")

	if !strings.Contains(port.String(), "LED|4|BLINK|80\n") {
		t.Errorf("Error blink not sent, port saw %q", port.String())
	}
}

func TestDriverStripsLineTerminators(t *testing.T) {
	d, _, launched := newTestDriver(Programs{"1": {"xeyes"}}, nil)

	d.HandleLine("BTN|1|DOWN\r\n")
	if len(*launched) != 1 {
		t.Errorf("CRLF-terminated line not handled: %v", *launched)
	}
}

func TestDriverIgnoresUnknownLines(t *testing.T) {
	d, port, launched := newTestDriver(Programs{"1": {"xeyes"}}, nil)

	d.HandleLine("BOOT|garbage")
	d.HandleLine("")
	d.HandleLine("BTN|1") // missing event field

	if len(*launched) != 0 || port.String() != "" {
		t.Errorf("Unknown lines had side effects: %v %q", *launched, port.String())
	}
}

func TestSendLEDFormatting(t *testing.T) {
	d, port, _ := newTestDriver(nil, nil)

	if err := d.SendLED("3", "ON", 0); err != nil {
		t.Fatal(err)
	}
	if err := d.SendLED("3", "BLINK", 250); err != nil {
		t.Fatal(err)
	}
	if got := port.String(); got != "LED|3|ON\nLED|3|BLINK|250\n" {
		t.Errorf("Unexpected wire format: %q", got)
	}
}
