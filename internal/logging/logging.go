package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logLevel(),
	}

	return &logger
}

func logLevel() logrus.Level {
	level, err := logrus.ParseLevel(os.Getenv("LEDGER_LOG_LEVEL"))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
