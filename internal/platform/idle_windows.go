package platform

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"
)

var (
	user32               = syscall.NewLazyDLL("user32.dll")
	kernel32             = syscall.NewLazyDLL("kernel32.dll")
	procGetLastInputInfo = user32.NewProc("GetLastInputInfo")
	procGetTickCount64   = kernel32.NewProc("GetTickCount64")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

type win32IdleSource struct{}

func newIdleSource() IdleSource {
	return win32IdleSource{}
}

func (win32IdleSource) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	ok, _, callErr := procGetLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if ok == 0 {
		return 0, fmt.Errorf("GetLastInputInfo: %w", callErr)
	}

	ticks, _, callErr := procGetTickCount64.Call()
	if ticks == 0 && callErr != nil {
		return 0, fmt.Errorf("GetTickCount64: %w", callErr)
	}

	// dwTime wraps at 49.7 days; the uint32 subtraction handles the wrap.
	idleMillis := uint32(ticks) - info.dwTime
	return time.Duration(idleMillis) * time.Millisecond, nil
}
