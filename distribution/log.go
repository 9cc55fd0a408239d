package distribution

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.WithField("pkg", "distribution")

// SetLogger sets the logger used by the package
func SetLogger(l logrus.FieldLogger) {
	logger = l.WithField("pkg", "distribution")
}
