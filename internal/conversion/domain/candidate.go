package domain

import "github.com/google/uuid"

// DuplicateCandidate is an existing account the matcher believes may already
// represent the lead's organization. Score is in [0,1] and optional.
type DuplicateCandidate struct {
	AccountID   uuid.UUID
	Name        string
	CompanyType string
	City        string
	State       string
	Score       *float64
}

// Confidence maps the score to a display tier. A missing score reads as
// "High"; this is a display convention, not a scoring rule.
func (c DuplicateCandidate) Confidence() string {
	switch {
	case c.Score == nil:
		return "High"
	case *c.Score >= 0.85:
		return "High"
	case *c.Score >= 0.60:
		return "Medium"
	default:
		return "Low"
	}
}
