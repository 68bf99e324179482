package worker

import (
	"strings"
	"time"

	"mercado-tracker/internal/domain/product"
	"mercado-tracker/internal/infra/mercadolivre"
)

// ingest converts raw listings into product records in marketplace order,
// stamping all of them with the same observation time. The authoritative
// duplicate check happens inside the store append, under its lock.
func ingest(listings []mercadolivre.Listing, now time.Time) []product.Product {
	out := make([]product.Product, 0, len(listings))
	for _, l := range listings {
		if l.ID == "" {
			continue
		}
		out = append(out, product.Product{
			ID:        l.ID,
			Title:     l.Title,
			Price:     l.Price,
			Link:      l.Permalink,
			Thumbnail: secureThumbnail(l.Thumbnail),
			FoundAt:   now,
		})
	}
	return out
}

// The marketplace still serves some thumbnails over plain http; upgrade the
// scheme so embedding clients do not trip mixed-content rules.
func secureThumbnail(u string) string {
	if strings.HasPrefix(u, "http:") {
		return "https:" + strings.TrimPrefix(u, "http:")
	}
	return u
}
