package response

import (
	"time"

	"mercado-tracker/internal/usecase/queries"
)

type ProductResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Link      string    `json:"link"`
	Thumbnail string    `json:"thumbnail"`
	FoundAt   time.Time `json:"foundAt"`
}

func FromProductList(views []queries.ProductView) []*ProductResponse {
	res := make([]*ProductResponse, len(views))
	for i, v := range views {
		res[i] = &ProductResponse{
			ID:        v.ID,
			Title:     v.Title,
			Price:     v.Price,
			Link:      v.Link,
			Thumbnail: v.Thumbnail,
			FoundAt:   v.FoundAt,
		}
	}
	return res
}
