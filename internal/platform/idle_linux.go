package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"focuswave/internal/core/session"
)

// x11IdleSource shells out to xprintidle. Wayland sessions without an
// XWayland bridge have no portable idle counter, so they report unsupported.
type x11IdleSource struct {
	binPath string
}

func newIdleSource() IdleSource {
	if strings.EqualFold(os.Getenv("XDG_SESSION_TYPE"), "wayland") {
		return unsupportedIdleSource{}
	}
	binPath, err := exec.LookPath("xprintidle")
	if err != nil {
		return unsupportedIdleSource{}
	}
	return &x11IdleSource{binPath: binPath}
}

func (source *x11IdleSource) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(source.binPath).Output()
	if err != nil {
		return 0, fmt.Errorf("xprintidle: %w", session.ErrIdleUnsupported)
	}

	millis, err := strconv.ParseInt(strings.TrimSpace(string(output)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse xprintidle output: %w", err)
	}
	if millis < 0 {
		millis = 0
	}
	return time.Duration(millis) * time.Millisecond, nil
}
