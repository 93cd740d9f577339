package domain

// ShopScope is the closed set of access scopes a principal can hold:
// unrestricted (all shops) or restricted to a single shop.
type ShopScope struct {
	shopID       int64
	unrestricted bool
}

func Unrestricted() ShopScope {
	return ShopScope{unrestricted: true}
}

func Restricted(shopID int64) ShopScope {
	return ShopScope{shopID: shopID}
}

// Allows reports whether the scope grants access to the given shop.
func (s ShopScope) Allows(shopID int64) bool {
	return s.unrestricted || s.shopID == shopID
}

func (s ShopScope) IsUnrestricted() bool {
	return s.unrestricted
}

// ShopID returns the bound shop for a restricted scope; ok is false for an
// unrestricted scope.
func (s ShopScope) ShopID() (int64, bool) {
	if s.unrestricted {
		return 0, false
	}
	return s.shopID, true
}
