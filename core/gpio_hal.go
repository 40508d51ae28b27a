package core

// GPIODriver is the abstract pin interface the control core polls and
// drives. Target-specific code registers the hardware implementation;
// tests register a mock.
type GPIODriver interface {
	// ReadButton samples the logical level of button channel ch (0-based);
	// true means pressed, with any electrical inversion already applied.
	ReadButton(ch int) bool

	// SetLED drives LED channel ch (0-based) lit (true) or dark (false).
	SetLED(ch int, on bool)
}

// Global singleton used by the control core.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
