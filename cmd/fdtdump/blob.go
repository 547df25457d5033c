package main

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// mappedBlob memory-maps path read-only and returns its bytes, matching
// spec section 1's description of the demonstration driver.
type mappedBlob struct {
	data []byte
}

func mapFile(path string) (*mappedBlob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	return &mappedBlob{data: data}, nil
}

func (m *mappedBlob) Close() error {
	if m == nil || m.data == nil {
		return nil
	}
	err := unix.Munmap(m.data)
	m.data = nil
	return err
}
