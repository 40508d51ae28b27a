package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"panelfw/host/driver"
	"panelfw/host/serial"
)

var (
	device   = flag.String("device", "", "Serial device path (auto-detected when empty)")
	baud     = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	config   = flag.String("config", "config/programs.json", "Channel-to-program config file")
	simulate = flag.Bool("simulate", false, "Read panel lines from stdin instead of a serial port")
)

func main() {
	flag.Parse()

	fmt.Println("Panel Host - Launcher Panel Driver")
	fmt.Println("==================================")

	programs, err := driver.LoadPrograms(*config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d program mapping(s) from %s\n", len(programs), *config)

	if *simulate {
		runSimulation(programs)
		return
	}

	dev := *device
	if dev == "" {
		dev, err = serial.DetectDevice()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	cfg := serial.DefaultConfig(dev)
	cfg.Baud = *baud

	// The transport retries opening and reconnects on IO errors, so a
	// panel unplug never terminates the host. The greeting goes out on
	// every (re)connect; the firmware ignores it, but it marks our end
	// of the conversation in a serial capture.
	fmt.Printf("Connecting to panel on %s...\n", dev)
	transport := serial.NewTransport(cfg, "HELLO|PC")
	transport.Connect()
	defer transport.Close()

	d := driver.New(programs, transport)

	scanner := bufio.NewScanner(transport)
	for scanner.Scan() {
		d.HandleLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading from panel: %v\n", err)
		os.Exit(1)
	}
}

// runSimulation plays the panel's role on stdin/stdout so the driver
// can be exercised without hardware.
func runSimulation(programs driver.Programs) {
	fmt.Println("Simulation mode: type panel lines (e.g. BTN|1|DOWN) on stdin")

	port := &simulatedPort{}
	d := driver.New(programs, port)
	if err := d.SendHello(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		d.HandleLine(scanner.Text())
	}
	fmt.Println("Simulation ended")
}

// simulatedPort echoes everything the driver would send to the panel.
type simulatedPort struct{}

func (s *simulatedPort) Write(p []byte) (int, error) {
	fmt.Printf("-> panel: %s\n", strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
