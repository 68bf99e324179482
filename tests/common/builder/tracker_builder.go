//go:build unit || e2e

package builder

import (
	"time"

	domtracker "mercado-tracker/internal/domain/tracker"
	reqdto "mercado-tracker/internal/handler/dto/request"
	"mercado-tracker/internal/usecase/commands"
	"mercado-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type TrackerBuilder struct {
	SearchTerm    string
	MinPrice      int
	MaxPrice      int
	Condition     string
	Location      string
	NotifyAddress string
	CreatedAt     time.Time
}

func NewTrackerBuilder() *TrackerBuilder {
	return &TrackerBuilder{
		SearchTerm:    "Playstation 5",
		MinPrice:      3000,
		MaxPrice:      4000,
		Condition:     "all",
		Location:      "RJ",
		NotifyAddress: "+55 21 98888-8888",
		CreatedAt:     time.Now(),
	}
}

func (b *TrackerBuilder) With(mutate func(*TrackerBuilder)) *TrackerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TrackerBuilder) BuildDomain() (*domtracker.Tracker, error) {
	return domtracker.New(b.SearchTerm, b.MinPrice, b.MaxPrice, b.Condition, b.Location, b.NotifyAddress, b.CreatedAt)
}

func (b *TrackerBuilder) BuildCreateRequestDTO() reqdto.CreateTrackerRequest {
	return reqdto.CreateTrackerRequest{
		SearchTerm:    b.SearchTerm,
		MinPrice:      b.MinPrice,
		MaxPrice:      b.MaxPrice,
		Condition:     b.Condition,
		Location:      b.Location,
		NotifyAddress: b.NotifyAddress,
	}
}

func (b *TrackerBuilder) BuildCreateInput() commands.CreateTrackerInput {
	return commands.CreateTrackerInput{
		SearchTerm:    b.SearchTerm,
		MinPrice:      b.MinPrice,
		MaxPrice:      b.MaxPrice,
		Condition:     b.Condition,
		Location:      b.Location,
		NotifyAddress: b.NotifyAddress,
	}
}

func (b *TrackerBuilder) BuildView() queries.TrackerView {
	return queries.TrackerView{
		ID:            uuid.New(),
		SearchTerm:    b.SearchTerm,
		MinPrice:      b.MinPrice,
		MaxPrice:      b.MaxPrice,
		Condition:     b.Condition,
		Location:      b.Location,
		NotifyAddress: b.NotifyAddress,
		CreatedAt:     b.CreatedAt,
		Status:        string(domtracker.StatusPending),
	}
}
