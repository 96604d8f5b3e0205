package logger

import (
	"fmt"
	"net/url"
	"os"

	"github.com/speijnik/go-errortree"

	alogger "fry.org/qft/trail/internal/application/logger"
	ilogrus "fry.org/qft/trail/internal/infrastructure/logger/logrus"
	ivoid "fry.org/qft/trail/internal/infrastructure/logger/void"
)

// Parse the uri string and returns the proper implementation.
// Available uris:
//
//	"logger:logrus"  - structured logging to stderr
//	"logger:void"    - discard log entries
//	"printer:logrus" - raw text to stdout
//	"printer:void"   - discard printed text
func Parse(URI string) (alogger.Logger, alogger.Printer, error) {
	var rcerror error

	u, err := url.Parse(URI)
	if err != nil {
		return nil, nil, errortree.Add(rcerror, "logger.Parse", err)
	}
	switch u.Scheme {
	case "logger":
		switch u.Opaque {
		case "logrus":
			return ilogrus.NewLogger(os.Stderr), nil, nil
		case "void":
			return ivoid.NewLogger(), nil, nil
		}
		return nil, nil, errortree.Add(rcerror, "logger.Parse", fmt.Errorf("unsupported logger implementation %q", u.Opaque))
	case "printer":
		switch u.Opaque {
		case "logrus":
			return nil, ilogrus.NewPrinter(os.Stdout), nil
		case "void":
			return nil, ivoid.NewPrinter(), nil
		}
		return nil, nil, errortree.Add(rcerror, "logger.Parse", fmt.Errorf("unsupported printer implementation %q", u.Opaque))
	}

	return nil, nil, errortree.Add(rcerror, "logger.Parse", fmt.Errorf("invalid scheme %s", URI))
}
