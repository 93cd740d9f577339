package domain

import "testing"

func TestShopScope_Allows(t *testing.T) {
	tests := []struct {
		name   string
		scope  ShopScope
		shopID int64
		want   bool
	}{
		{name: "unrestricted allows any shop", scope: Unrestricted(), shopID: 3, want: true},
		{name: "restricted allows own shop", scope: Restricted(2), shopID: 2, want: true},
		{name: "restricted denies other shop", scope: Restricted(2), shopID: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scope.Allows(tt.shopID); got != tt.want {
				t.Errorf("Allows(%d) = %v, want %v", tt.shopID, got, tt.want)
			}
		})
	}
}

func TestShopScope_ShopID(t *testing.T) {
	if _, ok := Unrestricted().ShopID(); ok {
		t.Error("unrestricted scope should not expose a shop id")
	}
	id, ok := Restricted(4).ShopID()
	if !ok || id != 4 {
		t.Errorf("Restricted(4).ShopID() = %d, %v, want 4, true", id, ok)
	}
}

func TestUser_Scope(t *testing.T) {
	shop := int64(2)

	tests := []struct {
		name         string
		user         User
		unrestricted bool
	}{
		{name: "admin is unrestricted", user: User{AccessLevel: AccessAdmin}, unrestricted: true},
		{name: "admin with shop binding still unrestricted", user: User{AccessLevel: AccessAdmin, ShopID: &shop}, unrestricted: true},
		{name: "manager without shop is unrestricted", user: User{AccessLevel: AccessShopManager}, unrestricted: true},
		{name: "manager with shop is restricted", user: User{AccessLevel: AccessShopManager, ShopID: &shop}, unrestricted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := tt.user.Scope()
			if scope.IsUnrestricted() != tt.unrestricted {
				t.Errorf("IsUnrestricted() = %v, want %v", scope.IsUnrestricted(), tt.unrestricted)
			}
			if !tt.unrestricted {
				if !scope.Allows(shop) || scope.Allows(shop+1) {
					t.Error("restricted scope should allow only its own shop")
				}
			}
		})
	}
}
