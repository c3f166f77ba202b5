package config

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

var logrusInstance *logrus.Logger

func GetLogrusInstance() *logrus.Logger {
	if logrusInstance == nil {
		logrusInstance = logrus.New()
		logrusInstance.SetFormatter(&logrus.JSONFormatter{})
	}
	return logrusInstance
}

const (
	green  = "\033[32m" // Green for 200 series
	yellow = "\033[33m" // Yellow for 300 series
	red    = "\033[31m" // Red for 400 and 500 series
	reset  = "\033[0m"  // Reset to default color
)

func PrintLogInfo(statusCode int, functionName string) {
	var logColor string

	switch {
	case statusCode < 300:
		logColor = green
	case statusCode < 400:
		logColor = yellow
	default:
		logColor = red
	}

	log := GetLogrusInstance()
	log.Infof("(%s) => Status: %s[%d] - %s%s", functionName, logColor, statusCode, http.StatusText(statusCode), reset)
}
