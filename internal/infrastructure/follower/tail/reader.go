package tail

import (
	"context"
	"fmt"
	"time"

	aconfigurable "fry.org/qft/trail/internal/application/configurable"
	afollower "fry.org/qft/trail/internal/application/follower"
)

// Reader adapts a Follower to the application follower port: it drives
// Step on the configured poll interval (or earlier, on a wakeup signal)
// and surfaces emitted text and diagnostics as channels.
type Reader struct {
	fu    *Follower
	diags chan error
	lines chan string
	errs  chan error
}

// chanPrinter forwards emitted text into the Reader's lines channel,
// giving up when the driving context ends.
type chanPrinter struct {
	ctx   context.Context
	lines chan<- string
}

func (p chanPrinter) Print(v ...interface{}) {

	select {
	case p.lines <- fmt.Sprint(v...):
	case <-p.ctx.Done():
	}
}

func (p chanPrinter) Printf(format string, v ...interface{}) {

	p.Print(fmt.Sprintf(format, v...))
}

// OpenTailReader opens path for following and returns the channel based
// adapter around it.
func OpenTailReader(name string, opts ...aconfigurable.ConfigurablerFn) (*Reader, error) {

	r := &Reader{
		diags: make(chan error, 16),
	}
	opts = append(opts, WithDiagnostics(r.diags))
	fu, err := Open(name, opts...)
	if err != nil {
		return nil, err
	}
	r.fu = fu

	return r, nil
}

// NewFollower opens path and hides the concrete Reader behind the
// application port.
func NewFollower(path string, opts ...aconfigurable.ConfigurablerFn) (afollower.Follower, error) {

	return OpenTailReader(path, opts...)
}

// Stats exposes the counters of the underlying Follower.
func (r *Reader) Stats() Stats {

	return r.fu.Stats()
}

// Close releases the underlying Follower.
func (r *Reader) Close() error {

	return r.fu.Close()
}

func (r *Reader) Lines(ctx context.Context) (chan string, chan error, error) {

	r.lines = make(chan string)
	r.errs = make(chan error)
	r.fu.cfg.printer = chanPrinter{ctx: ctx, lines: r.lines}

	go func() {
		defer func() {
			r.fu.Close()
			close(r.lines)
			close(r.errs)
		}()
		tick := time.NewTicker(r.fu.cfg.pollInterval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-r.diags:
				select {
				case r.errs <- err:
				case <-ctx.Done():
					return
				}
			case <-tick.C:
			case <-r.fu.cfg.wakeup:
			}
			if err := r.fu.Step(); err != nil {
				select {
				case r.errs <- err:
				case <-ctx.Done():
				}
				return
			}
		}
	}()

	return r.lines, r.errs, nil
}
