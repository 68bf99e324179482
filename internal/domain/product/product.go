// Package product holds the persisted record of a marketplace listing first
// observed by this system. The ID is assigned by the marketplace and is the
// deduplication key: the history contains at most one record per ID, ever.
package product

import "time"

type Product struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Link      string    `json:"link"`
	Thumbnail string    `json:"thumbnail"`
	FoundAt   time.Time `json:"foundAt"`
}
