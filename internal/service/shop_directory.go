package service

import (
	"context"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/repository"
)

// ShopDirectory is the authoritative shop lookup, loaded once at process
// start. Shops are seeded at deployment and do not change at runtime.
type ShopDirectory struct {
	shops []domain.Shop
	byID  map[int64]domain.Shop
}

func NewShopDirectory(shops []domain.Shop) *ShopDirectory {
	d := &ShopDirectory{
		shops: shops,
		byID:  make(map[int64]domain.Shop, len(shops)),
	}
	for _, s := range shops {
		d.byID[s.ID] = s
	}
	return d
}

func LoadShopDirectory(ctx context.Context, repo repository.ShopRepository) (*ShopDirectory, error) {
	shops, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewShopDirectory(shops), nil
}

func (d *ShopDirectory) List() []domain.Shop {
	return d.shops
}

func (d *ShopDirectory) Get(id int64) (domain.Shop, bool) {
	s, ok := d.byID[id]
	return s, ok
}
