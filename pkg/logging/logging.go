package logging

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// New builds the application logger. Level falls back to info on
// unknown values so a bad env setting never silences logs.
func New(level string) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	lv, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lv = logrus.InfoLevel
	}
	l.SetLevel(lv)
	return l
}

// Activity records a user/admin action with the canonical audit fields.
func Activity(l *logrus.Logger, actor, ip, action string, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["actor"] = actor
	fields["ip"] = ip
	fields["action"] = action
	l.WithFields(fields).Info("activity")
}

// Reservation records a reservation lifecycle event.
func Reservation(l *logrus.Logger, event string, fields logrus.Fields) {
	if fields == nil {
		fields = logrus.Fields{}
	}
	fields["event"] = event
	l.WithFields(fields).Info("reservation " + event)
}
