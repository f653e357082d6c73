package health

// ModeDisabled is reported for a document store that failed to initialize or was turned off.
const ModeDisabled = "disabled"

// Status is the health payload.
type Status struct {
	OK            bool   `json:"ok"`
	DocumentStore string `json:"documentStore"`
	ObjectStore   string `json:"objectStore"`
}

// Service encapsulates health-related checks.
type Service struct {
	documentStore string
	objectStore   string
}

// NewService constructs a new health service. An empty documentStore is reported as disabled.
func NewService(documentStore, objectStore string) *Service {
	if documentStore == "" {
		documentStore = ModeDisabled
	}
	return &Service{documentStore: documentStore, objectStore: objectStore}
}

// Status returns the health payload. The process is healthy while it can accept uploads,
// which holds in degraded mode too.
func (s *Service) Status() Status {
	return Status{OK: true, DocumentStore: s.documentStore, ObjectStore: s.objectStore}
}
