package rolegate

import (
	"testing"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name   string
		page   Page
		userID uint
		role   string
		want   Decision
	}{
		{"public_anonymous", PagePublic, 0, "", Decision{Allow: true}},
		{"public_signed_in", PagePublic, 7, entity.RoleCustomer, Decision{Allow: true}},
		{"customer_page_anonymous", PageCustomerOnly, 0, "", Decision{RedirectTo: LoginPath}},
		{"customer_page_customer", PageCustomerOnly, 7, entity.RoleCustomer, Decision{Allow: true}},
		{"customer_page_owner", PageCustomerOnly, 7, entity.RoleRestaurantOwner, Decision{Allow: true}},
		{"owner_page_anonymous", PageOwnerOnly, 0, "", Decision{RedirectTo: LoginPath}},
		{"owner_page_customer", PageOwnerOnly, 7, entity.RoleCustomer, Decision{RedirectTo: LoginPath}},
		{"owner_page_owner", PageOwnerOnly, 7, entity.RoleRestaurantOwner, Decision{Allow: true}},
		{"owner_page_unknown_role", PageOwnerOnly, 7, "", Decision{RedirectTo: LoginPath}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.page, tt.userID, tt.role))
		})
	}
}

func TestAuthorize_Deterministic(t *testing.T) {
	first := Authorize(PageOwnerOnly, 3, entity.RoleCustomer)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Authorize(PageOwnerOnly, 3, entity.RoleCustomer))
	}
}

func TestMissingOwnerRecord(t *testing.T) {
	d := MissingOwnerRecord()
	assert.False(t, d.Allow)
	assert.Equal(t, RestaurantSignupPath, d.RedirectTo)
}
