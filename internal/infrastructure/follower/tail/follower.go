package tail

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	aconfigurable "fry.org/qft/trail/internal/application/configurable"
	"github.com/speijnik/go-errortree"
)

// ErrRetriesExhausted is the terminal failure: the path could not be
// opened within the configured retry budget. It ends following; every
// other condition is absorbed and reported.
var ErrRetriesExhausted = errors.New("open retries exhausted")

// Stats are counters accumulated over the lifetime of a Follower.
type Stats struct {
	Steps        uint64
	BytesRead    uint64
	CharsEmitted uint64
	Rotations    uint64
	Truncations  uint64
	DecodeErrors uint64
	StatFailures uint64
	OpenRetries  uint64
}

// Follower tracks one file by path and emits newly appended text to the
// configured printer, surviving rotation (path replaced by a different
// physical file) and truncation (same file shrinking in place).
//
// A Follower is single threaded by design: the caller drives it by
// invoking Step from one goroutine, with whatever idle delay suits it.
// Nothing here spawns goroutines or takes locks.
type Follower struct {
	path     string
	cfg      tailCfg
	file     *os.File
	fileStat *FileStat
	offset   int64
	lastSize int64
	pending  []byte
	retries  int
	opened   bool
	stats    Stats
}

// Open creates a Follower for path. The first open is attempted within
// the retry budget; on success the handle is positioned at the end of the
// file, unless WithReadFromHead is set or a configured PositionFile still
// refers to the same physical file, in which case the recorded offset is
// resumed.
func Open(path string, opts ...aconfigurable.ConfigurablerFn) (*Follower, error) {
	var rcerror, err error

	cfg, err := newTailCfg()
	if err != nil {
		return nil, errortree.Add(rcerror, "tail.Open", err)
	}
	if err = cfg.Configure(opts...); err != nil {
		return nil, errortree.Add(rcerror, "tail.Open", err)
	}
	f := &Follower{
		path: path,
		cfg:  cfg,
	}
	if err = f.openWithRetry(); err != nil {
		return nil, err
	}

	return f, nil
}

// openWithRetry is the only place a new handle/identity pair is
// installed. It attempts to open the path up to cfg.maxRetries times,
// sleeping cfg.retryDelay between attempts; exhausting the budget is
// terminal. The retry counter resets on any successful open.
func (f *Follower) openWithRetry() error {

	for {
		file, err := OpenFile(f.path)
		if err == nil {
			var st *FileStat
			if st, err = Stat(file); err == nil {
				if f.file != nil {
					f.file.Close()
				}
				f.file = file
				f.fileStat = st
				f.lastSize = st.Size()
				f.retries = 0
				return f.seekInitial()
			}
			file.Close()
		}
		f.retries++
		f.stats.OpenRetries++
		f.cfg.logger.Debugf("tail: open %s attempt %d/%d failed: %v", f.path, f.retries, f.cfg.maxRetries, err)
		if f.retries >= f.cfg.maxRetries {
			return fmt.Errorf("tail.openWithRetry %s: %w: %v", f.path, ErrRetriesExhausted, err)
		}
		time.Sleep(f.cfg.retryDelay)
	}
}

// seekInitial positions a freshly installed handle. Only the very first
// open of the Follower's lifetime starts at the tail; a reopen after
// rotation starts at the beginning, since a freshly created file has no
// prior tail position.
func (f *Follower) seekInitial() error {
	var rcerror error

	if f.opened {
		f.offset = 0
		return nil
	}
	f.opened = true

	if pf := f.cfg.positionFile; pf != nil && pf.FileStat() != nil && SameFile(pf.FileStat(), f.fileStat) {
		offset := pf.Offset()
		if offset > f.lastSize {
			// the file shrank while we were away, the recorded offset is stale
			offset = 0
		}
		if _, err := f.file.Seek(offset, io.SeekStart); err != nil {
			return errortree.Add(rcerror, "tail.seekInitial", err)
		}
		f.offset = offset
		return nil
	}
	if f.cfg.readFromHead {
		f.offset = 0
		return nil
	}
	offset, err := f.file.Seek(0, io.SeekEnd)
	if err != nil {
		return errortree.Add(rcerror, "tail.seekInitial", err)
	}
	f.offset = offset

	return nil
}

// Step performs one poll cycle: stat the path, decide between no-op,
// truncation seek or rotation reopen, read whatever bytes are available,
// decode them and emit the completed text. It returns an error only for
// terminal conditions; decode errors are reported through the
// diagnostics channel unless strict decoding is configured.
func (f *Follower) Step() error {
	var rcerror error

	f.stats.Steps++
	if st, err := StatByName(f.path); err != nil {
		// Transient: a lagging stat during rotation must not be mistaken
		// for permanent loss. Keep draining the handle we already hold.
		f.stats.StatFailures++
		f.cfg.logger.Debugf("tail: stat %s: %v", f.path, err)
	} else if !SameFile(st, f.fileStat) {
		// Rotation. Whatever the old file still held past our position is
		// unreachable through this path now, and so is the continuation of
		// any pending partial character.
		f.stats.Rotations++
		f.pending = f.pending[:0]
		f.cfg.logger.Debugf("tail: %s rotated, reopening", f.path)
		if err := f.openWithRetry(); err != nil {
			return err
		}
	} else if st.Size() < f.lastSize {
		// Truncation. Same physical file, shorter content: start over at
		// offset 0 and drop stale partial-character state.
		f.stats.Truncations++
		f.pending = f.pending[:0]
		f.cfg.logger.Debugf("tail: %s truncated from %d to %d", f.path, f.lastSize, st.Size())
		if _, err := f.file.Seek(0, io.SeekStart); err != nil {
			return errortree.Add(rcerror, "tail.Step", err)
		}
		f.offset = 0
		f.lastSize = st.Size()
	}

	data, err := io.ReadAll(f.file)
	if err != nil {
		return errortree.Add(rcerror, "tail.Step", err)
	}
	if len(data) == 0 {
		// caught up
		return nil
	}
	f.stats.BytesRead += uint64(len(data))
	f.offset += int64(len(data))
	if f.offset > f.lastSize {
		f.lastSize = f.offset
	}

	text, derr := f.decode(data)
	if text != "" {
		f.cfg.printer.Print(text)
		f.stats.CharsEmitted += uint64(len(text))
	}
	if pf := f.cfg.positionFile; pf != nil {
		// Persist the offset of the last emitted byte, not the last read
		// one: bytes held back as a pending partial character must be read
		// again by whoever resumes from this position.
		if err := pf.Set(f.fileStat, f.offset-int64(len(f.pending))); err != nil {
			f.diag(errortree.Add(rcerror, "tail.Step", err))
		}
	}
	if derr != nil {
		f.stats.DecodeErrors++
		if f.cfg.strictDecode {
			return derr
		}
		f.diag(derr)
	}

	return nil
}

// diag reports a non fatal error without ever blocking the step loop.
func (f *Follower) diag(err error) {

	if f.cfg.diags != nil {
		select {
		case f.cfg.diags <- err:
			return
		default:
		}
	}
	f.cfg.logger.Logf("tail: %v", err)
}

// Stats returns a copy of the counters accumulated so far.
func (f *Follower) Stats() Stats {

	return f.stats
}

// Path returns the followed path.
func (f *Follower) Path() string {

	return f.path
}

// position returns the identity/offset pair currently tracked.
func (f *Follower) position() (*FileStat, int64) {

	return f.fileStat, f.offset
}

// Close releases the open handle and the position file, if any.
func (f *Follower) Close() error {
	var rcerror error

	if f.file != nil {
		if err := f.file.Close(); err != nil {
			rcerror = errortree.Add(rcerror, "tail.Close", err)
		}
		f.file = nil
	}
	if pf := f.cfg.positionFile; pf != nil {
		if err := pf.Close(); err != nil {
			rcerror = errortree.Add(rcerror, "tail.Close", err)
		}
	}

	return rcerror
}
