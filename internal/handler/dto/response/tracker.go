package response

import (
	"time"

	"mercado-tracker/internal/domain/tracker"
	"mercado-tracker/internal/usecase/queries"
)

// TrackerResponse deliberately has no confirmation code field: the code must
// never cross the engine boundary, whatever the tracker's status.
type TrackerResponse struct {
	ID            string    `json:"id"`
	SearchTerm    string    `json:"searchTerm"`
	MinPrice      int       `json:"minPrice"`
	MaxPrice      int       `json:"maxPrice"`
	Condition     string    `json:"condition"`
	Location      string    `json:"location"`
	NotifyAddress string    `json:"notifyAddress"`
	CreatedAt     time.Time `json:"createdAt"`
	Status        string    `json:"status"`
}

func FromTracker(t *tracker.Tracker) *TrackerResponse {
	return &TrackerResponse{
		ID:            t.ID.String(),
		SearchTerm:    t.SearchTerm,
		MinPrice:      t.MinPrice,
		MaxPrice:      t.MaxPrice,
		Condition:     string(t.Condition),
		Location:      t.Location,
		NotifyAddress: t.NotifyAddress,
		CreatedAt:     t.CreatedAt,
		Status:        string(t.Status),
	}
}

func FromTrackerView(v queries.TrackerView) *TrackerResponse {
	return &TrackerResponse{
		ID:            v.ID.String(),
		SearchTerm:    v.SearchTerm,
		MinPrice:      v.MinPrice,
		MaxPrice:      v.MaxPrice,
		Condition:     v.Condition,
		Location:      v.Location,
		NotifyAddress: v.NotifyAddress,
		CreatedAt:     v.CreatedAt,
		Status:        v.Status,
	}
}

func FromTrackerList(views []queries.TrackerView) []*TrackerResponse {
	res := make([]*TrackerResponse, len(views))
	for i, v := range views {
		res[i] = FromTrackerView(v)
	}
	return res
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
