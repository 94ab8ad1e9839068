//go:build !windows
// +build !windows

package console

// readSequence reads one keypress worth of bytes in raw mode.
func (d *KeyDecoder) readSequence() (string, error) {
	return d.withRawMode(func() (string, error) {
		return decodeSequence(d.readByte)
	})
}
