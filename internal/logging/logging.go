package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger: JSON in production, console in development.
func New(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
