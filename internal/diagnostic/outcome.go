package diagnostic

import "fmt"

// Status classifies a database probe.
type Status int

const (
	// StatusModuleNotFound: the database module is not enabled.
	StatusModuleNotFound Status = iota + 1
	// StatusResolveError: the module is enabled but producing the handle failed.
	StatusResolveError
	// StatusUninitialized: the module resolved to a nil handle.
	StatusUninitialized
	// StatusConnectivityError: the handle exists but listing collections failed.
	StatusConnectivityError
	// StatusWorking: the handle exists and listing collections succeeded.
	StatusWorking
)

func (s Status) String() string {
	switch s {
	case StatusModuleNotFound:
		return "module_not_found"
	case StatusResolveError:
		return "resolve_error"
	case StatusUninitialized:
		return "uninitialized"
	case StatusConnectivityError:
		return "connectivity_error"
	case StatusWorking:
		return "working"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Connected reports whether a handle was obtained.
func (s Status) Connected() bool {
	return s == StatusConnectivityError || s == StatusWorking
}

// Outcome is the result of one probe.  Excerpt is set for the two error
// statuses, Name and Collections only once a handle was obtained.
type Outcome struct {
	Status      Status
	Excerpt     string
	Name        string
	Collections []string
}

const (
	// MaxCollections bounds the collection names carried in an Outcome.
	MaxCollections = 10
	// ExcerptLen bounds error excerpts, in characters.
	ExcerptLen = 50
)

func excerpt(err error) string {
	if err == nil {
		return ""
	}
	r := []rune(err.Error())
	if len(r) > ExcerptLen {
		r = r[:ExcerptLen]
	}
	return string(r)
}

func firstCollections(names []string) []string {
	if len(names) > MaxCollections {
		names = names[:MaxCollections]
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}
