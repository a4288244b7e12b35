//go:build !linux

package mpris

// Adapter does nothing where there is no session D-Bus.
type Adapter struct{}

// New returns an inert adapter. Commands are never sent.
func New(Reader, Sender) (*Adapter, error) { return &Adapter{}, nil }

// Close does nothing.
func (*Adapter) Close() error { return nil }
