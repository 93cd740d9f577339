package repository

import (
	"context"

	"github.com/godofwar007/Store-income-control/internal/domain"
)

func (r ShopRepository) SeedDefaults(ctx context.Context) error {
	shops := []domain.Shop{
		{ID: 1, Name: "Магазин № 1", Location: "Пр. Строителей 132"},
		{ID: 2, Name: "Магазин № 2", Location: "Пр. Ленина 66/39"},
		{ID: 3, Name: "Магазин № 3", Location: "Пр. Строителей, 100"},
		{ID: 4, Name: "Магазин № 4", Location: ""},
	}

	for _, s := range shops {
		_, err := r.DB.Pool.Exec(ctx, `
			INSERT INTO shops (id, name, location)
			VALUES ($1, $2, $3)
			ON CONFLICT (id) DO NOTHING
		`, s.ID, s.Name, s.Location)
		if err != nil {
			return err
		}
	}

	// Keep the sequence ahead of the fixed seed ids.
	_, err := r.DB.Pool.Exec(ctx, `
		SELECT setval('shops_id_seq', (SELECT MAX(id) FROM shops))
	`)
	return err
}
