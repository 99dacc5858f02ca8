// SPDX-License-Identifier: GPL-3.0-or-later
package gmailprovider

import (
	"io/ioutil"

	"github.com/sirupsen/logrus"
)

func nullLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}
