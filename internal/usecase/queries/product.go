package queries

import (
	"context"
	"sort"
	"time"

	"github.com/jinzhu/copier"

	"mercado-tracker/internal/domain/product"
	"mercado-tracker/internal/pkg/errs"
)

type ProductView struct {
	ID        string
	Title     string
	Price     float64
	Link      string
	Thumbnail string
	FoundAt   time.Time
}

type ProductReadStore interface {
	Products() []product.Product
}

type ProductQueries interface {
	List(ctx context.Context) ([]ProductView, error)
}

type productQueriesImpl struct {
	store ProductReadStore
}

func NewProductQueries(store ProductReadStore) ProductQueries {
	return &productQueriesImpl{store: store}
}

func (q *productQueriesImpl) List(_ context.Context) ([]ProductView, error) {
	products := q.store.Products()

	var views []ProductView
	if err := copier.Copy(&views, &products); err != nil {
		return nil, errs.Wrap(err, "failed to map product views")
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].FoundAt.After(views[j].FoundAt)
	})
	return views, nil
}
