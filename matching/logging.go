// SPDX-License-Identifier: MIT

package matching

import (
	"os"

	"github.com/op/go-logging"
)

const logFormat = `%{time:15:04:05.000} %{module} %{level:.4s} %{message}`

// NewLogger builds a leveled stderr logger for module, suitable for
// WithLogger. Level names follow go-logging (DEBUG, INFO, WARNING, ...);
// an unknown level falls back to INFO.
func NewLogger(level, module string) *logging.Logger {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		lvl = logging.INFO
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(logFormat))
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(lvl, module)

	l := logging.MustGetLogger(module)
	l.SetBackend(leveled)

	return l
}
