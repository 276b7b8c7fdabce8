// Package qa matches questions against the indexed corpus and produces
// answers with explicit confidence.
package qa

import "github.com/gitaqa/gitaqa-go/gitadoc"

// Confidence levels of the answer contract.
const (
	ConfidenceExactVerse = 1.0
	ConfidenceQAPair     = 0.9
	ConfidenceStrongDoc  = 0.8
	ConfidenceWeakDoc    = 0.7
	ConfidenceNone       = 0.0
)

// ErrorKind classifies non-fatal faults surfaced by Fault results.
type ErrorKind string

const (
	ErrorKindBadRequest ErrorKind = "bad_request"
	ErrorKindInternal   ErrorKind = "internal"
)

// Result is the tagged outcome of answering a question. Exactly one of
// Answered, NotFound, or Fault is produced per question.
type Result interface {
	resultKind() string
}

// Answered carries a successful answer.
type Answered struct {
	Text       string                     `json:"answer"`
	Sources    []gitadoc.DocumentMetadata `json:"sources"`
	Confidence float64                    `json:"confidence"`
}

// NotFound reports that no content qualified for the question.
type NotFound struct {
	Reason string `json:"reason"`
}

// Fault reports a recovered internal failure.
type Fault struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (Answered) resultKind() string { return "answered" }
func (NotFound) resultKind() string { return "not_found" }
func (Fault) resultKind() string    { return "fault" }
