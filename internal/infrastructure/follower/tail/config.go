package tail

import (
	"errors"
	"time"

	aconfigurable "fry.org/qft/trail/internal/application/configurable"
	alogger "fry.org/qft/trail/internal/application/logger"
	ilogger "fry.org/qft/trail/internal/infrastructure/logger"
	"github.com/speijnik/go-errortree"
)

type tailCfg struct {
	printer      alogger.Printer
	logger       alogger.Logger
	diags        chan<- error
	positionFile PositionFile
	wakeup       <-chan struct{}
	readFromHead bool
	strictDecode bool
	maxRetries   int
	retryDelay   time.Duration
	pollInterval time.Duration
}

func newTailCfg() (tailCfg, error) {
	var rcerror, err error
	var printer alogger.Printer
	var logger alogger.Logger

	cfg := tailCfg{}
	if _, printer, err = ilogger.Parse("printer:void"); err != nil {
		return cfg, errortree.Add(rcerror, "newTailCfg", err)
	}
	cfg.printer = printer
	if logger, _, err = ilogger.Parse("logger:void"); err != nil {
		return cfg, errortree.Add(rcerror, "newTailCfg", err)
	}
	cfg.logger = logger

	return cfg, nil
}

func (cfg *tailCfg) Configure(configs ...aconfigurable.ConfigurablerFn) error {
	var rcerror error

	// Set default value
	cfg.maxRetries = 3
	cfg.retryDelay = 100 * time.Millisecond
	cfg.pollInterval = 100 * time.Millisecond
	cfg.readFromHead = false
	cfg.strictDecode = false

	// Loop through each option
	for _, c := range configs {
		if err := c(cfg); err != nil {
			return errortree.Add(rcerror, "Configure", err)
		}
	}

	return nil
}

// WithPrinter let you change the sink that decoded text is emitted to
func WithPrinter(p alogger.Printer) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.printer = p
			return nil
		}

		return errortree.Add(rcerror, "option.WithPrinter", errors.New("type mismatch, option expected"))
	})
}

// WithLogger let you change the diagnostic logger
func WithLogger(l alogger.Logger) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.logger = l
			return nil
		}

		return errortree.Add(rcerror, "option.WithLogger", errors.New("type mismatch, option expected"))
	})
}

// WithDiagnostics let you receive non fatal errors on a channel. Sends are
// non blocking; when the channel is full the error falls back to the
// configured logger
func WithDiagnostics(ch chan<- error) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.diags = ch
			return nil
		}

		return errortree.Add(rcerror, "option.WithDiagnostics", errors.New("type mismatch, option expected"))
	})
}

// WithPositionFile let you change positionFile
func WithPositionFile(positionFile PositionFile) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.positionFile = positionFile
			return nil
		}

		return errortree.Add(rcerror, "option.WithPositionFile", errors.New("type mismatch, option expected"))
	})
}

// WithPositionFilePath let you change positionFile
func WithPositionFilePath(path string) (aconfigurable.ConfigurablerFn, error) {
	if path == "" {
		return WithPositionFile(nil), nil
	}
	pf, err := OpenPositionFile(path)
	if err != nil {
		return nil, err
	}
	return WithPositionFile(pf), nil
}

// WithWakeup let you provide a channel that shortens idle latency between
// polls, typically fed by filesystem notifications
func WithWakeup(ch <-chan struct{}) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.wakeup = ch
			return nil
		}

		return errortree.Add(rcerror, "option.WithWakeup", errors.New("type mismatch, option expected"))
	})
}

// WithReadFromHead let you change readFromHead
func WithReadFromHead(v bool) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.readFromHead = v
			return nil
		}

		return errortree.Add(rcerror, "option.WithReadFromHead", errors.New("type mismatch, option expected"))
	})
}

// WithStrictDecode let you change strictDecode. When set, invalid UTF-8
// ends following instead of being reported and skipped
func WithStrictDecode(v bool) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.strictDecode = v
			return nil
		}

		return errortree.Add(rcerror, "option.WithStrictDecode", errors.New("type mismatch, option expected"))
	})
}

// WithMaxRetries let you change maxRetries
func WithMaxRetries(v int) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			if v < 1 {
				return errortree.Add(rcerror, "option.WithMaxRetries", errors.New("at least one open attempt is required"))
			}
			f.maxRetries = v
			return nil
		}

		return errortree.Add(rcerror, "option.WithMaxRetries", errors.New("type mismatch, option expected"))
	})
}

// WithRetryDelay let you change retryDelay
func WithRetryDelay(v time.Duration) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.retryDelay = v
			return nil
		}

		return errortree.Add(rcerror, "option.WithRetryDelay", errors.New("type mismatch, option expected"))
	})
}

// WithPollInterval let you change pollInterval
func WithPollInterval(v time.Duration) aconfigurable.ConfigurablerFn {

	return aconfigurable.ConfigurablerFn(func(i interface{}) error {
		var rcerror error
		var f *tailCfg
		var ok bool

		if f, ok = i.(*tailCfg); ok {
			f.pollInterval = v
			return nil
		}

		return errortree.Add(rcerror, "option.WithPollInterval", errors.New("type mismatch, option expected"))
	})
}
