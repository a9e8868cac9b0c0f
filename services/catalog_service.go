package services

import (
	"context"
	"sort"
	"strings"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"
)

// CatalogService is the read side of the platform: restaurants, menus and
// the derived bits of listing state (categories, cuisine types).
type CatalogService struct {
	RestRepo  *repository.RestaurantRepository
	MenuRepo  *repository.MenuRepository
	OrderRepo *repository.OrderRepository
}

func NewCatalogService(rests *repository.RestaurantRepository, menus *repository.MenuRepository, orders *repository.OrderRepository) *CatalogService {
	return &CatalogService{RestRepo: rests, MenuRepo: menus, OrderRepo: orders}
}

func (s *CatalogService) ListActiveRestaurants(ctx context.Context) ([]entity.Restaurant, error) {
	return s.RestRepo.FindActive(ctx)
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id uint) (*entity.Restaurant, error) {
	return s.RestRepo.FindByID(ctx, id)
}

// ListMenuItems returns a restaurant's menu plus the distinct categories
// present, sorted, with a synthetic leading "all".
func (s *CatalogService) ListMenuItems(ctx context.Context, restID uint) ([]entity.MenuItem, []string, error) {
	items, err := s.MenuRepo.FindByRestaurant(ctx, restID)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, it := range items {
		if it.Category != "" && !seen[it.Category] {
			seen[it.Category] = true
			categories = append(categories, it.Category)
		}
	}
	sort.Strings(categories)
	return items, append([]string{"all"}, categories...), nil
}

// FilterRestaurants narrows a listing by case-insensitive substring match on
// name or description and exact cuisine match. Empty arguments mean no
// constraint. Pure; no I/O.
func FilterRestaurants(all []entity.Restaurant, searchTerm, cuisine string) []entity.Restaurant {
	term := strings.ToLower(searchTerm)
	out := make([]entity.Restaurant, 0, len(all))
	for _, r := range all {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Description), term)
		matchesCuisine := cuisine == "" || r.CuisineType == cuisine
		if matchesSearch && matchesCuisine {
			out = append(out, r)
		}
	}
	return out
}

// CuisineTypes returns the sorted distinct cuisines present in a listing.
func CuisineTypes(all []entity.Restaurant) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, r := range all {
		if r.CuisineType != "" && !seen[r.CuisineType] {
			seen[r.CuisineType] = true
			out = append(out, r.CuisineType)
		}
	}
	sort.Strings(out)
	return out
}

func (s *CatalogService) ListOrdersForRestaurant(ctx context.Context, restID uint) ([]entity.Order, error) {
	return s.OrderRepo.FindByRestaurant(ctx, restID)
}
