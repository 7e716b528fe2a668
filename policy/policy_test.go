package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ruban71/Slooze-Food-App/models"
	"github.com/ruban71/Slooze-Food-App/policy"
)

func TestRestaurantRead(t *testing.T) {
	admin := policy.Authorize(models.RoleAdmin, models.CountryIndia, policy.RestaurantRead)
	assert.True(t, admin.Allowed)
	assert.Nil(t, admin.Country, "admin reads are unscoped")

	manager := policy.Authorize(models.RoleManager, models.CountryAmerica, policy.RestaurantRead)
	assert.True(t, manager.Allowed)
	if assert.NotNil(t, manager.Country) {
		assert.Equal(t, models.CountryAmerica, *manager.Country)
	}

	member := policy.Authorize(models.RoleMember, models.CountryIndia, policy.RestaurantRead)
	assert.True(t, member.Allowed)
	if assert.NotNil(t, member.Country) {
		assert.Equal(t, models.CountryIndia, *member.Country)
	}
}

func TestRestaurantWrite(t *testing.T) {
	admin := policy.Authorize(models.RoleAdmin, models.CountryIndia, policy.RestaurantWrite)
	assert.True(t, admin.Allowed)
	assert.Nil(t, admin.ForceCountry, "admin may write any country")

	manager := policy.Authorize(models.RoleManager, models.CountryAmerica, policy.RestaurantWrite)
	assert.True(t, manager.Allowed)
	if assert.NotNil(t, manager.ForceCountry) {
		assert.Equal(t, models.CountryAmerica, *manager.ForceCountry)
	}

	member := policy.Authorize(models.RoleMember, models.CountryIndia, policy.RestaurantWrite)
	assert.False(t, member.Allowed)
}

func TestOrderCreateOpenToAllRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleManager, models.RoleMember} {
		decision := policy.Authorize(role, models.CountryIndia, policy.OrderCreate)
		assert.True(t, decision.Allowed, role)
		assert.Nil(t, decision.Country, role)
		assert.False(t, decision.OwnerOnly, role)
	}
}

func TestOrderListScoping(t *testing.T) {
	admin := policy.Authorize(models.RoleAdmin, models.CountryIndia, policy.OrderList)
	assert.True(t, admin.Allowed)
	assert.Nil(t, admin.Country)
	assert.False(t, admin.OwnerOnly)

	manager := policy.Authorize(models.RoleManager, models.CountryIndia, policy.OrderList)
	assert.True(t, manager.Allowed)
	if assert.NotNil(t, manager.Country) {
		assert.Equal(t, models.CountryIndia, *manager.Country)
	}
	assert.False(t, manager.OwnerOnly, "a manager sees all of their country's orders, not just their own")

	member := policy.Authorize(models.RoleMember, models.CountryAmerica, policy.OrderList)
	assert.True(t, member.Allowed)
	assert.True(t, member.OwnerOnly)
	assert.Nil(t, member.Country, "owner scope already narrows beyond country")
}

func TestOrderManage(t *testing.T) {
	assert.True(t, policy.Authorize(models.RoleAdmin, models.CountryIndia, policy.OrderManage).Allowed)
	assert.True(t, policy.Authorize(models.RoleManager, models.CountryIndia, policy.OrderManage).Allowed)
	assert.False(t, policy.Authorize(models.RoleMember, models.CountryIndia, policy.OrderManage).Allowed)
}

func TestAdminOnlyActions(t *testing.T) {
	for _, action := range []policy.Action{policy.PaymentManage, policy.UserList} {
		assert.True(t, policy.Authorize(models.RoleAdmin, models.CountryIndia, action).Allowed, action)
		assert.False(t, policy.Authorize(models.RoleManager, models.CountryIndia, action).Allowed, action)
		assert.False(t, policy.Authorize(models.RoleMember, models.CountryAmerica, action).Allowed, action)
	}
}

func TestUnknownActionAndRoleDeny(t *testing.T) {
	assert.False(t, policy.Authorize(models.RoleAdmin, models.CountryIndia, policy.Action("fridge:open")).Allowed)
	assert.False(t, policy.Authorize(models.Role("INTERN"), models.CountryIndia, policy.RestaurantWrite).Allowed)
}
