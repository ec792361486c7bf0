package logging

import (
	"go.uber.org/zap"
)

// New builds the process-wide zap logger. Development gets the console
// encoder; anything else gets production JSON.
func New(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
