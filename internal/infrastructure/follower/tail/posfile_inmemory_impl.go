package tail

// InMemory creates an in memory PositionFile, useful when offsets should
// not survive the process.
func InMemory(fileStat *FileStat, offset int64) PositionFile {

	return &inMemory{entry{FileStat: fileStat, Offset: offset}}
}

type inMemory struct {
	entry
}

func (pf *inMemory) Close() error {

	return nil
}

func (pf *inMemory) FileStat() *FileStat {

	return pf.entry.FileStat
}

func (pf *inMemory) Offset() int64 {

	return pf.entry.Offset
}

func (pf *inMemory) Set(fileStat *FileStat, offset int64) error {

	pf.entry.FileStat = fileStat
	pf.entry.Offset = offset

	return nil
}
