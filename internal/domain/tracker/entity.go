package tracker

import (
	"time"

	"github.com/google/uuid"
)

// Tracker is a saved marketplace search plus its confirmation state.
//
// Fields are exported because the snapshot layer round-trips trackers as a
// whole document; every state transition still goes through the methods
// below. ConfirmationCode is persisted but must never reach clients; the
// response DTO layer owns that boundary.
type Tracker struct {
	ID               uuid.UUID `json:"id"`
	SearchTerm       string    `json:"searchTerm"`
	MinPrice         int       `json:"minPrice"`
	MaxPrice         int       `json:"maxPrice"`
	Condition        Condition `json:"condition"`
	Location         string    `json:"location"`
	NotifyAddress    string    `json:"notifyAddress"`
	CreatedAt        time.Time `json:"createdAt"`
	Status           Status    `json:"status"`
	ConfirmationCode string    `json:"confirmationCode,omitempty"`
}

// New builds a pending tracker with a freshly generated confirmation code.
// MinPrice/MaxPrice of 0 mean "unbounded" on that side; no ordering between
// the two is enforced, both act as optional filters.
func New(searchTerm string, minPrice, maxPrice int, condition, location, notifyAddress string, now time.Time) (*Tracker, error) {
	term, err := NewSearchTerm(searchTerm)
	if err != nil {
		return nil, err
	}
	address, err := NewNotifyAddress(notifyAddress)
	if err != nil {
		return nil, err
	}
	cond, err := ParseCondition(condition)
	if err != nil {
		return nil, err
	}
	loc, err := NewLocation(location)
	if err != nil {
		return nil, err
	}
	if minPrice < 0 || maxPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Tracker{
		ID:               uuid.New(),
		SearchTerm:       term,
		MinPrice:         minPrice,
		MaxPrice:         maxPrice,
		Condition:        cond,
		Location:         loc,
		NotifyAddress:    address,
		CreatedAt:        now,
		Status:           StatusPending,
		ConfirmationCode: GenerateCode(),
	}, nil
}

func (t *Tracker) IsActive() bool  { return t.Status == StatusActive }
func (t *Tracker) IsPending() bool { return t.Status == StatusPending }

// Confirm activates the tracker when code matches the stored one. An active
// tracker never carries a confirmation code; a failed attempt leaves the
// tracker pending with its code intact (retries are unlimited).
func (t *Tracker) Confirm(code string) error {
	if t.Status == StatusActive {
		return ErrAlreadyActive
	}
	if code == "" || code != t.ConfirmationCode {
		return ErrCodeMismatch
	}
	t.Status = StatusActive
	t.ConfirmationCode = ""
	return nil
}

// RotateCode replaces the stored confirmation code; the previous code becomes
// invalid immediately. Only pending trackers can rotate.
func (t *Tracker) RotateCode() error {
	if t.Status != StatusPending {
		return ErrNotPending
	}
	t.ConfirmationCode = GenerateCode()
	return nil
}
