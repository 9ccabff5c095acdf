package otel

import (
	"os"
)

const instrumentationName = "github.com/nanobanana/mcp"

var (
	EnableDebug     = false
	EnableTelemetry = false
)

// ReadEnv latches the telemetry switches from the environment. Call it after
// any .env file has been loaded, not at package init, or DEBUG/TELEMETRY set
// through dotenv would be missed.
func ReadEnv() {
	EnableDebug = os.Getenv("DEBUG") != ""
	EnableTelemetry = os.Getenv("TELEMETRY") != ""
}

type Observable interface {
	otelSetup()
}
