package tail

import (
	"encoding/gob"
	"os"
)

type entry struct {
	FileStat *FileStat
	Offset   int64
}

// OpenPositionFile opens the named PositionFile, creating it empty if it
// does not exist yet.
func OpenPositionFile(name string) (PositionFile, error) {

	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_SYNC, 0600)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	var ent entry
	if fi.Size() == 0 {
		return &positionFile{f: f, entry: ent}, nil
	}
	dec := gob.NewDecoder(f)
	if err := dec.Decode(&ent); err != nil {
		f.Close()
		return nil, err
	}

	return &positionFile{f: f, entry: ent}, nil
}

type positionFile struct {
	f *os.File
	entry
}

func (pf *positionFile) Close() error {

	return pf.f.Close()
}

func (pf *positionFile) FileStat() *FileStat {

	return pf.entry.FileStat
}

func (pf *positionFile) Offset() int64 {

	return pf.entry.Offset
}

func (pf *positionFile) Set(fileStat *FileStat, offset int64) error {

	pf.entry.FileStat = fileStat
	pf.entry.Offset = offset

	if err := pf.f.Truncate(0); err != nil {
		return err
	}
	if _, err := pf.f.Seek(0, 0); err != nil {
		return err
	}
	enc := gob.NewEncoder(pf.f)
	if err := enc.Encode(&pf.entry); err != nil {
		return err
	}

	return nil
}
