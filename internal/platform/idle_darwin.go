package platform

// No cgo-free idle API on macOS; auto-pause disables itself there.
func newIdleSource() IdleSource {
	return unsupportedIdleSource{}
}
