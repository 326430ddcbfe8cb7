//go:build !windows

package wave

// Per-window alpha needs compositor-specific calls fyne does not expose on
// this platform; the opacity preference is a no-op here.
func (surface *Window) applyNativeOpacity(alpha uint8) {}
