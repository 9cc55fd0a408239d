package stats

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.WithField("pkg", "stats")

// SetLogger sets the logger used by the package
func SetLogger(l logrus.FieldLogger) {
	logger = l.WithField("pkg", "stats")
}
