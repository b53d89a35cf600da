package config

import (
	"io"

	"github.com/rohanthewiz/serr"
	"github.com/sirupsen/logrus"
)

// NewLogger builds the logrus logger described by c, writing to out.
func (c LogConfig) NewLogger(out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)

	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, serr.Wrap(err, "level", c.Level)
	}
	logger.SetLevel(level)

	if c.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
