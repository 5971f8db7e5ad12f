// Package database is the optional database module.  It is switched on by
// naming a driver; Resolve reports whether the module is absent, failed
// to produce a handle, or is present (with a handle that may be nil when
// no connection URL is configured).
package database

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrUnknownDriver is returned when the configured driver is not compiled in.
var ErrUnknownDriver = errors.New("unknown database driver")

// Kind tags a Resolution.
type Kind int

const (
	KindAbsent Kind = iota
	KindFailed
	KindPresent
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindFailed:
		return "failed"
	case KindPresent:
		return "present"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Resolution is the outcome of looking up the database module.  Err is
// set only for KindFailed; Handle only for KindPresent and may be nil.
type Resolution struct {
	Kind   Kind
	Handle Handle
	Err    error
}

// Absent reports that the module is not enabled.
func Absent() Resolution { return Resolution{Kind: KindAbsent} }

// Failed reports an error while producing the handle.
func Failed(err error) Resolution { return Resolution{Kind: KindFailed, Err: err} }

// Present wraps a handle, which may be nil.
func Present(h Handle) Resolution { return Resolution{Kind: KindPresent, Handle: h} }

// Settings selects and configures the database module.
type Settings struct {
	Driver string
	URL    string
	Name   string
}

type opener func(rawURL, name string) (Handle, error)

var drivers = map[string]opener{
	"mysql": func(rawURL, name string) (Handle, error) {
		h, err := OpenMySQL(rawURL, name)
		if err != nil {
			return nil, err
		}
		return h, nil
	},
	"sqlite": func(rawURL, name string) (Handle, error) {
		h, err := OpenSQLite(rawURL, name)
		if err != nil {
			return nil, err
		}
		return h, nil
	},
}

// Resolve performs the capability check.  An empty driver means the module
// is absent; an enabled module without a URL yields a nil handle.
func Resolve(s Settings) Resolution {
	if s.Driver == "" {
		return Absent()
	}
	open, ok := drivers[s.Driver]
	if !ok {
		return Failed(fmt.Errorf("%w %q", ErrUnknownDriver, s.Driver))
	}
	if s.URL == "" {
		return Present(nil)
	}
	h, err := open(s.URL, s.Name)
	if err != nil {
		return Failed(err)
	}
	return Present(h)
}

// Module resolves once and keeps the result for the life of the process.
type Module struct {
	settings Settings
	once     sync.Once
	res      Resolution
}

// NewModule returns an unresolved Module.
func NewModule(s Settings) *Module {
	return &Module{settings: s}
}

// Resolve returns the cached Resolution, computing it on first use.
func (m *Module) Resolve() Resolution {
	m.once.Do(func() { m.res = Resolve(m.settings) })
	return m.res
}

// Close closes the handle if one was opened.  After Close the module
// never resolves again.
func (m *Module) Close() error {
	m.once.Do(func() {})
	if m.res.Kind != KindPresent || m.res.Handle == nil {
		return nil
	}
	if c, ok := m.res.Handle.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
