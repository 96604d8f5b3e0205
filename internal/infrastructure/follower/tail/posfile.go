package tail

// PositionFile records which physical file a follower was reading and how
// far it got, so a restarted follower can resume instead of starting at
// the tail.
type PositionFile interface {
	// Close closes this PositionFile
	Close() error
	// FileStat returns the recorded FileStat
	FileStat() *FileStat
	// Offset returns the recorded offset
	Offset() int64
	// Set records fileStat and offset
	Set(fileStat *FileStat, offset int64) error
}
