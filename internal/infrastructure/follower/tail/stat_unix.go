//go:build linux || freebsd || darwin
// +build linux freebsd darwin

package tail

import (
	"fmt"
	"os"
	"syscall"
)

// FileStat is an os specific file stat. It carries the identity of a
// physical file (device plus inode) together with its size, so that a
// follower can tell "the file at this path was replaced" apart from
// "the file at this path changed length".
type FileStat struct {
	Sys syscall.Stat_t
}

func stat(fi os.FileInfo, name string) (*FileStat, error) {

	sys, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("follow: unexpected FileInfo.Sys() type. name %s, type %T", name, fi.Sys())
	}
	if sys == nil {
		return nil, fmt.Errorf("follow: FileInfo.Sys() returns nil. name %s", name)
	}

	return &FileStat{Sys: *sys}, nil
}

// Stat returns the FileStat of an already open file.
func Stat(file *os.File) (*FileStat, error) {

	fi, err := file.Stat()
	if err != nil {
		return nil, err
	}

	return stat(fi, file.Name())
}

// StatByName returns the FileStat of the file currently reachable through
// name, without disturbing any open handle.
func StatByName(name string) (*FileStat, error) {

	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}

	return stat(fi, name)
}

// Size returns the byte length recorded in the stat.
func (s *FileStat) Size() int64 {

	return s.Sys.Size
}

// porting from os.sameFile
func (s *FileStat) sameFile(other *FileStat) bool {

	return s.Sys.Dev == other.Sys.Dev && s.Sys.Ino == other.Sys.Ino
}

// SameFile reports whether st1 and st2 represent the same physical file,
// regardless of the paths they were obtained through.
func SameFile(st1, st2 *FileStat) bool {

	return st1.sameFile(st2)
}
