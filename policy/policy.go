// Package policy is the single source of truth for role and country
// based access decisions. It knows nothing about HTTP or the store;
// callers apply the returned Decision to their queries and writes.
package policy

import (
	"github.com/ruban71/Slooze-Food-App/models"
)

// Action names a guarded operation on a resource class
type Action string

const (
	RestaurantRead  Action = "restaurant:read"
	RestaurantWrite Action = "restaurant:write"
	OrderCreate     Action = "order:create"
	OrderList       Action = "order:list"
	OrderManage     Action = "order:manage"
	PaymentManage   Action = "payment:manage"
	UserList        Action = "user:list"
)

// Decision is the outcome of an authorization check.
//
// Allowed false means the caller may not perform the action at all.
// When Allowed is true the zero values mean an unscoped grant; the
// scoping fields narrow it:
//
//   - Country non-nil: reads must be filtered to records in that country
//   - OwnerOnly: reads must be filtered to records the caller owns
//   - ForceCountry non-nil: writes must persist that country, whatever
//     the client supplied
type Decision struct {
	Allowed      bool
	Country      *models.Country
	OwnerOnly    bool
	ForceCountry *models.Country
}

// Deny is the zero Decision
var Deny = Decision{}

// Authorize maps (role, country, action) to a Decision. ADMIN is
// unscoped everywhere; MANAGER is confined to their own country;
// MEMBER sees their own country's catalog and only their own orders.
func Authorize(role models.Role, country models.Country, action Action) Decision {
	switch action {
	case RestaurantRead:
		if role == models.RoleAdmin {
			return Decision{Allowed: true}
		}
		return Decision{Allowed: true, Country: &country}

	case RestaurantWrite:
		switch role {
		case models.RoleAdmin:
			return Decision{Allowed: true}
		case models.RoleManager:
			return Decision{Allowed: true, ForceCountry: &country}
		}
		return Deny

	case OrderCreate:
		return Decision{Allowed: true}

	case OrderList:
		switch role {
		case models.RoleAdmin:
			return Decision{Allowed: true}
		case models.RoleManager:
			return Decision{Allowed: true, Country: &country}
		}
		return Decision{Allowed: true, OwnerOnly: true}

	case OrderManage:
		if role == models.RoleAdmin || role == models.RoleManager {
			return Decision{Allowed: true}
		}
		return Deny

	case PaymentManage, UserList:
		if role == models.RoleAdmin {
			return Decision{Allowed: true}
		}
		return Deny
	}
	return Deny
}
