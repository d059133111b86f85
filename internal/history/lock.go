package history

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/MichaelCook/cd-history/internal/messages"
)

type fileLock struct {
	file *os.File
}

var lockFileFn = lockFile
var unlockFileFn = unlockFile
var flockFn = unix.Flock
var lockSleep = time.Sleep

var (
	lockWaitTimeout = 10 * time.Second
	lockPollEvery   = 50 * time.Millisecond
)

// withFileLock acquires a lock for path, runs fn, and releases the lock.
// Every interactive shell rewrites the history on every prompt, so concurrent
// writers are the normal case rather than the exception.
func withFileLock(path string, fn func() error) error {
	lock, err := acquireFileLock(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.release()
	}()
	return fn()
}

// acquireFileLock opens or creates path and acquires an exclusive lock.
func acquireFileLock(path string) (*fileLock, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.LockOpenFailedFmt, path, err)
	}
	if err := lockFileFn(file); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf(messages.LockAcquireFailedFmt, path, err)
	}
	return &fileLock{file: file}, nil
}

// release unlocks and closes the file lock.
func (l *fileLock) release() error {
	if l == nil || l.file == nil {
		return nil
	}
	if err := unlockFileFn(l.file); err != nil {
		_ = l.file.Close()
		return err
	}
	return l.file.Close()
}

// lockFile acquires an exclusive advisory lock on the file.
func lockFile(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.LockTimeoutFmt, file.Name())
		}
		lockSleep(lockPollEvery)
	}
}

// unlockFile releases the advisory lock on the file.
func unlockFile(file *os.File) error {
	return flockFn(int(file.Fd()), unix.LOCK_UN)
}
