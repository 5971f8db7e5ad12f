package diagnostic

// Environment variables whose presence is reported.
const (
	DatabaseURLEnv  = "DATABASE_URL"
	DatabaseNameEnv = "DATABASE_NAME"
)

// Report strings.
const (
	BackendRunning        = "✅ Running"
	DatabaseNotAvailable  = "❌ Not Available"
	DatabaseModuleMissing = "❌ Database module not found (set DATABASE_DRIVER to enable)"
	DatabaseErrorPrefix   = "❌ Error: "
	DatabaseUninitialized = "⚠️  Available but not initialized"
	DatabaseWorking       = "✅ Connected & Working"
	DatabaseConnErrPrefix = "⚠️  Connected but Error: "
	NameConnected         = "✅ Connected"
	EnvSet                = "✅ Set"
	EnvNotSet             = "❌ Not Set"
	NotConnected          = "Not Connected"
	Connected             = "Connected"
)

// Report is the body of GET /test.  Every field is always present.
type Report struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// NewReport returns the baseline report before any probing.
func NewReport() Report {
	return Report{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		ConnectionStatus: NotConnected,
		Collections:      []string{},
	}
}

// Render turns an Outcome into a Report.  lookup reads environment
// variables; only their presence is reported.
func Render(o Outcome, lookup func(string) string) Report {
	r := NewReport()

	switch o.Status {
	case StatusModuleNotFound:
		r.Database = DatabaseModuleMissing
	case StatusResolveError:
		r.Database = DatabaseErrorPrefix + o.Excerpt
	case StatusUninitialized:
		r.Database = DatabaseUninitialized
	case StatusConnectivityError:
		r.Database = DatabaseConnErrPrefix + o.Excerpt
		r.DatabaseName = o.Name
		r.ConnectionStatus = Connected
	case StatusWorking:
		r.Database = DatabaseWorking
		r.DatabaseName = o.Name
		r.ConnectionStatus = Connected
		r.Collections = firstCollections(o.Collections)
	}

	// The env presence flags replace whatever name the handle reported.
	r.DatabaseURL = presence(lookup(DatabaseURLEnv))
	r.DatabaseName = presence(lookup(DatabaseNameEnv))
	return r
}

func presence(v string) string {
	if v != "" {
		return EnvSet
	}
	return EnvNotSet
}
