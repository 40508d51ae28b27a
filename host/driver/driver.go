package driver

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// Feedback blink patterns after a launch attempt. A fast angry blink
// signals failure; a calmer one signals success. Both end in OFF.
const (
	launchOKPeriodMS  = 180
	launchOKDuration  = 1200 * time.Millisecond
	launchErrPeriodMS = 80
	launchErrDuration = 2000 * time.Millisecond
)

// Driver reacts to panel event lines and drives the panel LEDs.
type Driver struct {
	programs Programs

	mu   sync.Mutex // serializes port writes (flash timers fire async)
	port io.Writer

	// launch starts a program; replaceable for tests.
	launch func(argv []string) error

	// Flash durations, shortened by tests.
	okDuration  time.Duration
	errDuration time.Duration
}

// New creates a driver writing LED commands to port.
func New(programs Programs, port io.Writer) *Driver {
	return &Driver{
		programs:    programs,
		port:        port,
		launch:      launchDetached,
		okDuration:  launchOKDuration,
		errDuration: launchErrDuration,
	}
}

// launchDetached starts argv without waiting for it to exit.
func launchDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the child so it doesn't linger as a zombie.
	go cmd.Wait()
	return nil
}

// HandleLine processes one line received from the panel.
func (d *Driver) HandleLine(line string) {
	line = strings.TrimRight(line, "\r\n")
	if line == "" {
		return
	}
	fields := strings.Split(line, "|")

	switch strings.ToUpper(fields[0]) {
	case "READY":
		fmt.Printf("Panel ready: %s\n", line)
	case "PONG":
		fmt.Println("Panel is alive")
	case "BTN":
		if len(fields) >= 3 {
			d.handleButton(fields[1], fields[2])
		}
	default:
		// Unknown lines are ignored, same as the firmware does with ours.
	}
}

// handleButton launches the mapped program on DOWN. UP and HOLD are
// informational only.
func (d *Driver) handleButton(channel, event string) {
	if !strings.EqualFold(event, "DOWN") {
		return
	}

	argv, ok := d.programs[channel]
	if !ok {
		fmt.Printf("Button %s pressed, no program mapped\n", channel)
		d.flash(channel, launchErrPeriodMS, d.errDuration)
		return
	}

	fmt.Printf("Button %s pressed, launching %s\n", channel, argv[0])
	if err := d.launch(argv); err != nil {
		fmt.Printf("Launch failed: %v\n", err)
		d.flash(channel, launchErrPeriodMS, d.errDuration)
		return
	}
	d.flash(channel, launchOKPeriodMS, d.okDuration)
}

// SendHello announces the host to the panel. The firmware ignores it,
// but it is useful when watching the wire.
func (d *Driver) SendHello() error {
	return d.sendLine("HELLO|PC")
}

// SendPing asks the panel for a liveness reply.
func (d *Driver) SendPing() error {
	return d.sendLine("PING")
}

// SendLED sends a raw LED command: mode ON, OFF or BLINK with an
// optional period in milliseconds.
func (d *Driver) SendLED(channel string, mode string, periodMS uint) error {
	if periodMS > 0 {
		return d.sendLine(fmt.Sprintf("LED|%s|%s|%d", channel, mode, periodMS))
	}
	return d.sendLine(fmt.Sprintf("LED|%s|%s", channel, mode))
}

// flash blinks the channel LED for a while, then switches it off.
func (d *Driver) flash(channel string, periodMS uint, duration time.Duration) {
	if err := d.SendLED(channel, "BLINK", periodMS); err != nil {
		fmt.Printf("Failed to send LED command: %v\n", err)
		return
	}
	time.AfterFunc(duration, func() {
		if err := d.SendLED(channel, "OFF", 0); err != nil {
			fmt.Printf("Failed to send LED command: %v\n", err)
		}
	})
}

func (d *Driver) sendLine(line string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := io.WriteString(d.port, line+"\n"); err != nil {
		return fmt.Errorf("failed to write to panel: %w", err)
	}
	return nil
}
