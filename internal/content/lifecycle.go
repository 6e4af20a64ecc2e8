package content

import "fmt"

// Status is the lifecycle state of a piece of content.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusApproved  Status = "approved"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

var transitions = map[Status][]Status{
	StatusDraft:     {StatusReview},
	StatusReview:    {StatusApproved, StatusRejected},
	StatusApproved:  {StatusScheduled},
	StatusScheduled: {StatusPublished},
}

// ParseStatus validates a status identifier.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusDraft, StatusReview, StatusApproved, StatusScheduled, StatusPublished, StatusRejected:
		return st, nil
	}
	return "", fmt.Errorf("unknown status: %q", s)
}

// CanTransition reports whether moving from s to next is allowed.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}
