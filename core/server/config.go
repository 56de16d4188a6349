package server

import "time"

// Config holds configuration for the HTTP status server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// PlanCacheSeconds is how long a plan preview is reused. Zero recomputes
	// it on every request.
	PlanCacheSeconds int `mapstructure:"plan_cache_seconds" default:"30"`
}

// Address returns the listen address for Port.
func (c Config) Address() string {
	return ":" + c.Port
}

// PlanCacheTTL returns PlanCacheSeconds as a duration.
func (c Config) PlanCacheTTL() time.Duration {
	if c.PlanCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.PlanCacheSeconds) * time.Second
}
