package utils

import (
	"time"
)

// Unit conversion constants
const (
	// MMPerFoot is the number of millimeters in one foot
	MMPerFoot = 304.8

	// MMPerInch is the number of millimeters in one inch
	MMPerInch = 25.4
)

// Engine constants
const (
	// EngineVersion tracks the rules engine revision stamped onto every configuration
	EngineVersion = "1.0.0"

	// MaxWattsPerRun is the physical driver/wire safety ceiling per electrical run.
	// Hardware constraint, not configuration.
	MaxWattsPerRun = 85.0

	// DefaultUsableLoadFactor is the fraction of a driver's rated wattage treated
	// as safe continuous capacity when the catalog row does not specify one.
	DefaultUsableLoadFactor = 0.8

	// QuoteCacheTTL bounds how long a cached quote response is served before the
	// engine recomputes against current reference data.
	QuoteCacheTTL = 15 * time.Minute

	// QuoteCacheKeyPrefix namespaces cached quote responses, keyed by config hash
	QuoteCacheKeyPrefix = "quote:"

	// ItemCodePrefix is the prefix for generated configured-item codes
	ItemCodePrefix = "ILL-"
)

// HTTP constants
const (
	// CORSMaxAge is how long browsers may cache preflight responses, in seconds
	CORSMaxAge = 86400
)

// Context keys used by handlers to decorate flow contexts
type ContextKey string

const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)
