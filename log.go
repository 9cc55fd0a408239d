package symdist

import "github.com/sirupsen/logrus"

var logger logrus.FieldLogger = logrus.WithField("pkg", "symdist")

// SetLogger sets the logger used by the package
func SetLogger(l logrus.FieldLogger) {
	logger = l.WithField("pkg", "symdist")
}
