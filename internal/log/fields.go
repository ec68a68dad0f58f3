package log

// Common attribute keys so log output stays greppable across components.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldCount     = "count"
	FieldBackend   = "backend"
)

// Component names used by the binaries.
const (
	ComponentApp     = "app"
	ComponentBackend = "backend"
	ComponentAMQP    = "amqp"
)
