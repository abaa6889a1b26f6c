package utils

import "go.uber.org/zap"

// NewLogger builds a development logger for the dev environment and a JSON
// production logger everywhere else.
func NewLogger(env string) (*zap.Logger, error) {
	if env == "" || env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
