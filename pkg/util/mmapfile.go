package util

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// ReadFileMapped returns a file's contents, memory-mapped when possible so
// only the pages a parser touches are faulted in. The returned close func
// must be called once the bytes are no longer referenced. Empty files and
// mmap failures fall back to a plain read with a no-op closer.
func ReadFileMapped(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	info, err := f.Stat()
	if err != nil || info.Size() == 0 {
		f.Close()
		if err != nil {
			return nil, nil, err
		}
		return nil, func() error { return nil }, nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		// Fall back to a buffered read; some filesystems refuse mmap.
		f.Close()
		data, rerr := os.ReadFile(path)
		if rerr != nil {
			return nil, nil, rerr
		}
		return data, func() error { return nil }, nil
	}

	closer := func() error {
		uerr := m.Unmap()
		cerr := f.Close()
		if uerr != nil {
			return uerr
		}
		return cerr
	}
	return m, closer, nil
}
