package repository

import (
	"context"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// SeedDefaults creates the deployment accounts: one manager per seeded shop
// and one unrestricted admin. Existing usernames are left untouched.
func (r UserRepository) SeedDefaults(ctx context.Context) error {
	accounts := []struct {
		username string
		password string
		level    domain.AccessLevel
		shopID   *int64
	}{
		{"shop1_manager", "Sun12345", domain.AccessShopManager, shopRef(1)},
		{"shop2_manager", "Tree2023", domain.AccessShopManager, shopRef(2)},
		{"shop3_manager", "Sky9876", domain.AccessShopManager, shopRef(3)},
		{"shop4_manager", "Moon4567", domain.AccessShopManager, shopRef(4)},
		{"mariupol_shop", "Triathlon2025", domain.AccessAdmin, nil},
	}

	for _, a := range accounts {
		var exists bool
		err := r.DB.Pool.QueryRow(ctx, `
			SELECT EXISTS (SELECT 1 FROM users WHERE username=$1)
		`, a.username).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		_, err = r.DB.Pool.Exec(ctx, `
			INSERT INTO users (username, password_hash, access_level, shop_id, created_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (username) DO NOTHING
		`, a.username, string(hash), string(a.level), a.shopID)
		if err != nil {
			return err
		}
	}
	return nil
}

func shopRef(id int64) *int64 { return &id }
