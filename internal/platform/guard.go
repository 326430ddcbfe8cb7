// Package platform holds the OS-specific pieces: the single-instance
// guard, user idle detection, and launch-at-login management.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// Guard holds the single-instance lock. Binding a deterministic localhost
// port doubles as a cross-platform lock that the OS releases on crash.
type Guard struct {
	listener net.Listener
	address  string
}

// AcquireGuard takes the single-instance lock for the named application.
func AcquireGuard(appName string) (*Guard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &Guard{listener: listener, address: address}, nil
}

// Release frees the lock.
func (guard *Guard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

// Address returns the bound lock address.
func (guard *Guard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// lockPort maps the app name into the 20000-39999 range.
func lockPort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return 20000 + int(hash.Sum32()%20000)
}
