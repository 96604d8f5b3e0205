package trailiora

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	aconfigurable "fry.org/qft/trail/internal/application/configurable"
	alogger "fry.org/qft/trail/internal/application/logger"
	aprinter "fry.org/qft/trail/internal/application/printer"
	ifollower "fry.org/qft/trail/internal/infrastructure/follower"
	itail "fry.org/qft/trail/internal/infrastructure/follower/tail"
	ilogger "fry.org/qft/trail/internal/infrastructure/logger"
	ireport "fry.org/qft/trail/internal/infrastructure/printer/report"
	iwatcher "fry.org/qft/trail/internal/infrastructure/watcher"

	"github.com/davecgh/go-spew/spew"
	"github.com/speijnik/go-errortree"
)

// Follow a single file, emitting newly appended text to stdout.
type FollowCmd struct {
	File         string        `kong:"arg,required,help='File to follow'"`
	Engine       string        `kong:"default='tail',enum='tail,file,tailor',help='Following engine'"`
	FromHead     bool          `kong:"help='Start emitting from the beginning of the file'"`
	PollInterval time.Duration `kong:"default='100ms',help='Idle delay between poll steps'"`
	MaxRetries   int           `kong:"default='3',help='Open attempts before giving up'"`
	RetryDelay   time.Duration `kong:"default='100ms',help='Delay between open attempts'"`
	PositionFile string        `kong:"help='Resume offsets from this state file'"`
	Notify       bool          `kong:"help='Use filesystem notifications to shorten idle latency'"`
	StrictDecode bool          `kong:"help='Treat invalid UTF-8 as a fatal error'"`
	Report       string        `kong:"default='none',enum='none,text,json,excel',help='Session report format on shutdown'"`
	ReportFile   string        `kong:"default='trailiora-report.xlsx',help='Destination of the excel session report'"`
}

type statser interface {
	Stats() itail.Stats
}

func (cmd *FollowCmd) reportMode() aprinter.PrinterMode {

	switch cmd.Report {
	case "text":
		return aprinter.PrinterModeText
	case "json":
		return aprinter.PrinterModeJSON
	case "excel":
		return aprinter.PrinterModeExcel
	}

	return aprinter.PrinterModeNone
}

func (cmd *FollowCmd) Run(cli *CLI) error {
	var rcerror, err error

	logger, _, err := ilogger.Parse("logger:logrus")
	if err != nil {
		return errortree.Add(rcerror, "followcmd.Run", err)
	}
	if cli.Debug {
		logger.SetLevel(alogger.LoggerLevelDebug)
	}
	_, stdout, err := ilogger.Parse("printer:logrus")
	if err != nil {
		return errortree.Add(rcerror, "followcmd.Run", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	configs := []aconfigurable.ConfigurablerFn{
		itail.WithLogger(logger),
		itail.WithMaxRetries(cmd.MaxRetries),
		itail.WithRetryDelay(cmd.RetryDelay),
		itail.WithStrictDecode(cmd.StrictDecode),
	}
	if cmd.PositionFile != "" {
		pfOpt, err := itail.WithPositionFilePath(cmd.PositionFile)
		if err != nil {
			return errortree.Add(rcerror, "followcmd.Run", err)
		}
		configs = append(configs, pfOpt)
	}
	if cmd.Notify {
		wakeup, err := iwatcher.Watch(ctx, cmd.File, logger)
		if err != nil {
			return errortree.Add(rcerror, "followcmd.Run", err)
		}
		configs = append(configs, itail.WithWakeup(wakeup))
	}

	follow, err := ifollower.Parse("follower:"+cmd.Engine, cmd.File, cmd.FromHead, cmd.PollInterval, configs...)
	if err != nil {
		return errortree.Add(rcerror, "followcmd.Run", err)
	}
	if cli.Debug {
		spew.Fdump(os.Stderr, cmd)
	}

	lines, errs, err := follow.Lines(ctx)
	if err != nil {
		return errortree.Add(rcerror, "followcmd.Run", err)
	}

mainLoop:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				break mainLoop
			}
			stdout.Print(line)
		case followErr, ok := <-errs:
			if !ok {
				break mainLoop
			}
			if errors.Is(followErr, itail.ErrRetriesExhausted) {
				rcerror = errortree.Add(rcerror, "followcmd.Run", followErr)
				break mainLoop
			}
			if cmd.StrictDecode && errors.Is(followErr, itail.ErrInvalidEncoding) {
				rcerror = errortree.Add(rcerror, "followcmd.Run", followErr)
				break mainLoop
			}
			logger.Logf("follow: %v", followErr)
		case <-ctx.Done():
			break mainLoop
		}
	}

	if s, ok := follow.(statser); ok {
		stats := s.Stats()
		if cli.Debug {
			spew.Fdump(os.Stderr, stats)
		}
		rep := ireport.NewReport(cmd.File, stats, stdout, cmd.ReportFile)
		if err := rep.Print(cmd.reportMode()); err != nil {
			rcerror = errortree.Add(rcerror, "followcmd.Run", err)
		}
	}

	return rcerror
}
