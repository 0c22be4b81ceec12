package robot

import "fmt"

// FaultKind classifies a controller fault.
type FaultKind int

const (
	MechanicalFault FaultKind = iota
	SensorFault
	MotorFault
	WiringFault
)

func (k FaultKind) String() string {
	switch k {
	case MechanicalFault:
		return "mechanical"
	case SensorFault:
		return "sensor"
	case MotorFault:
		return "motor"
	case WiringFault:
		return "wiring"
	default:
		return "unknown"
	}
}

// Fault is reported against the controller and shown in the message log.
type Fault struct {
	Kind   FaultKind
	Detail string
}

func (it Fault) Error() string {
	return fmt.Sprintf("robot: %s fault: %s", it.Kind, it.Detail)
}
