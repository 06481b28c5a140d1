package io

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// WriteFile creates path and passes it to write. The file is closed before
// WriteFile returns, and a close error is reported like a write error. If
// either fails, the partial file is removed.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %s: %w", path, cerr))
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()
	return write(f)
}
