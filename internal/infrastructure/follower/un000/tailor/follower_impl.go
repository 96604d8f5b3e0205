package tailor

import (
	"context"
	"io"
	"time"

	afollower "fry.org/qft/trail/internal/application/follower"
	"github.com/un000/tailor"
)

// Reader is a file reader that behaves like tail -F, backed by the
// un000/tailor poller. Line oriented: partial lines are held back until
// their newline arrives, which also keeps multi-byte characters intact.
type Reader struct {
	t *tailor.Tailor
}

func NewFollower(path string, fromHead bool, pollInterval time.Duration) afollower.Follower {

	seekWhence := io.SeekEnd
	if fromHead {
		seekWhence = io.SeekStart
	}
	ta := tailor.New(
		path,
		tailor.WithSeekOnStartup(0, seekWhence),
		tailor.WithPollerTimeout(pollInterval),
	)

	return &Reader{
		t: ta,
	}
}

func (r *Reader) Lines(ctx context.Context) (chan string, chan error, error) {

	chLines := make(chan string)
	if err := r.t.Run(ctx); err != nil {
		return chLines, r.t.Errors(), err
	}
	go func() {
		defer close(chLines)
		for {
			select {
			case entry := <-r.t.Lines():
				select {
				case chLines <- entry.String():
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return chLines, r.t.Errors(), nil
}
