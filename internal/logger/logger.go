// Package logger construit le logger zap de l'application.
package logger

import "go.uber.org/zap"

// New retourne un logger de production pour env == "production",
// un logger de développement sinon.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
