package auth

// Biometric is the platform biometric capability. Runtimes without the
// hardware inject Unavailable; callers branch on HasHardware/IsEnrolled
// instead of probing by failure.
type Biometric interface {
	HasHardware() bool
	IsEnrolled() bool
	Authenticate(prompt string) (bool, error)
}

// Unavailable is the biometric implementation for runtimes without the
// capability. Authenticate always answers false without error; the caller
// falls back to the PIN.
type Unavailable struct{}

func (Unavailable) HasHardware() bool { return false }

func (Unavailable) IsEnrolled() bool { return false }

func (Unavailable) Authenticate(string) (bool, error) { return false, nil }

// StaticBiometric is a configurable stand-in used in tests and development
// runtimes to exercise the biometric code paths.
type StaticBiometric struct {
	Hardware bool
	Enrolled bool
	Accept   bool
}

func (b StaticBiometric) HasHardware() bool { return b.Hardware }

func (b StaticBiometric) IsEnrolled() bool { return b.Enrolled }

func (b StaticBiometric) Authenticate(string) (bool, error) {
	if !b.Hardware || !b.Enrolled {
		return false, nil
	}
	return b.Accept, nil
}
