package sym

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.WithField("pkg", "sym")

// SetLogger sets the logger used by the package
func SetLogger(l logrus.FieldLogger) {
	logger = l.WithField("pkg", "sym")
}
