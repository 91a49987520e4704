package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. JSON output is used in deployments where
// logs are shipped to an aggregator; text otherwise.
func New(jsonOutput bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	if jsonOutput {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
