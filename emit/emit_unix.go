//go:build unix

package emit

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// writeFile writes data to path and syncs it. A partially written file is
// removed.
func writeFile(path string, data []byte) error {
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_CREAT|unix.O_TRUNC|unix.O_CLOEXEC, 0o644)
	if err != nil {
		return err
	}
	fail := func(err error) error {
		_ = unix.Close(fd)
		_ = os.Remove(path)
		return err
	}

	written := 0
	for written < len(data) {
		n, err := unix.Write(fd, data[written:])
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fail(err)
		}
		if n <= 0 {
			return fail(fmt.Errorf("short write (%d/%d)", written, len(data)))
		}
		written += n
	}
	if err := unix.Fsync(fd); err != nil {
		return fail(fmt.Errorf("fsync: %w", err))
	}
	if err := unix.Close(fd); err != nil {
		_ = os.Remove(path)
		return err
	}
	return nil
}
