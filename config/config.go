// Package config config contains configurations
package config

// DevEnv is the enviroment the server runs in
type DevEnv string

const (
	// Prod is the production enviroment
	Prod DevEnv = "PROD"
	// Dev is the local development enviroment
	Dev DevEnv = "DEV"
	// Test is the enviroment used by the test suite
	Test DevEnv = "TEST"
)

// GetDevEnv is a function that resolves the running enviroment from the
// enviroment configuration, anything unknown counts as test
func GetDevEnv(env *Env) DevEnv {
	switch env.DevEnv {
	case string(Prod):
		return Prod
	case string(Dev):
		return Dev
	default:
		return Test
	}
}
