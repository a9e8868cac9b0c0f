// Package rolegate turns (identity, role) into a page-level authorization
// decision. Decisions are pure values; callers perform the navigation.
package rolegate

import (
	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
)

type Page int

const (
	PagePublic Page = iota
	PageCustomerOnly
	PageOwnerOnly
)

const (
	LoginPath            = "/login"
	RestaurantSignupPath = "/restaurant-signup"
)

// Decision is either Allow or a redirect to a named path.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

func allow() Decision { return Decision{Allow: true} }

func redirect(path string) Decision { return Decision{RedirectTo: path} }

// Authorize decides access for a page class. userID 0 means anonymous.
func Authorize(page Page, userID uint, role string) Decision {
	switch page {
	case PagePublic:
		return allow()
	case PageCustomerOnly:
		if userID == 0 {
			return redirect(LoginPath)
		}
		return allow()
	case PageOwnerOnly:
		if userID == 0 || role != entity.RoleRestaurantOwner {
			return redirect(LoginPath)
		}
		return allow()
	}
	return redirect(LoginPath)
}

// MissingOwnerRecord is the decision for an authenticated owner whose
// restaurant record does not exist yet: finish signup first.
func MissingOwnerRecord() Decision {
	return redirect(RestaurantSignupPath)
}
