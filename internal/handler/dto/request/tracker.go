package request

import (
	"mercado-tracker/internal/usecase/commands"
)

type CreateTrackerRequest struct {
	SearchTerm    string `json:"searchTerm" binding:"required"`
	MinPrice      int    `json:"minPrice" binding:"omitempty,min=0"`
	MaxPrice      int    `json:"maxPrice" binding:"omitempty,min=0"`
	Condition     string `json:"condition" binding:"omitempty,oneof=all new used"`
	Location      string `json:"location" binding:"omitempty,max=2"`
	NotifyAddress string `json:"notifyAddress" binding:"required"`
}

func (r *CreateTrackerRequest) ToInput() commands.CreateTrackerInput {
	return commands.CreateTrackerInput{
		SearchTerm:    r.SearchTerm,
		MinPrice:      r.MinPrice,
		MaxPrice:      r.MaxPrice,
		Condition:     r.Condition,
		Location:      r.Location,
		NotifyAddress: r.NotifyAddress,
	}
}

type ConfirmTrackerRequest struct {
	Code string `json:"code" binding:"required"`
}
