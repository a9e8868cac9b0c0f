package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"github.com/Shaan-kapoor/restaurant-menu-platform/entity"
	"github.com/Shaan-kapoor/restaurant-menu-platform/pkg/apperr"
	"github.com/Shaan-kapoor/restaurant-menu-platform/repository"
	"github.com/Shaan-kapoor/restaurant-menu-platform/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService is the identity side of the platform: account creation,
// credential checks, token issuance, password reset and profile updates.
type AuthService struct {
	DB        *gorm.DB
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	roleCache *repository.RoleCache
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(db *gorm.DB, users *repository.UserRepository, rests *repository.RestaurantRepository, roles *repository.RoleCache, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		DB:        db,
		userRepo:  users,
		restRepo:  rests,
		roleCache: roles,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

type SignUpInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
	Role            string
}

// validate rejects malformed input before anything touches the store.
func (in *SignUpInput) validate() error {
	if in.Name == "" || in.Email == "" || in.Password == "" || in.ConfirmPassword == "" {
		return apperr.Validation("please fill in all fields")
	}
	if in.Password != in.ConfirmPassword {
		return apperr.Validation("passwords do not match")
	}
	if len(in.Password) < 6 {
		return apperr.Validation("password must be at least 6 characters long")
	}
	switch in.Role {
	case entity.RoleCustomer, entity.RoleRestaurantOwner:
	default:
		return apperr.Validation("unknown role")
	}
	return nil
}

// SignUp creates the identity and its profile record, initialised with zero
// reward counters and the default tier.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*entity.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.Auth("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Auth("hash password failed")
	}

	now := time.Now()
	user := &entity.User{
		Email:           email,
		Password:        string(hashed),
		Name:            strings.TrimSpace(in.Name),
		Role:            in.Role,
		PointsEarned:    0,
		OrdersCompleted: 0,
		CurrentTier:     "bronze",
		LastLogin:       &now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

type OwnerSignUpInput struct {
	Account SignUpInput

	RestaurantName string
	Description    string
	CuisineType    string
	Address        string
	Phone          string
	Website        string
	ImageURL       string
}

func validURL(raw string) bool {
	if raw == "" {
		return true // optional
	}
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// SignUpOwner is the two-step restaurant signup collapsed into one call:
// account fields first, then restaurant fields, then a single transaction
// creating both records. The restaurant starts active with default hours.
func (s *AuthService) SignUpOwner(ctx context.Context, in OwnerSignUpInput) (*entity.User, *entity.Restaurant, error) {
	in.Account.Role = entity.RoleRestaurantOwner
	if err := in.Account.validate(); err != nil {
		return nil, nil, err
	}
	if in.RestaurantName == "" || in.CuisineType == "" || in.Address == "" || in.Phone == "" {
		return nil, nil, apperr.Validation("please fill in all required fields")
	}
	if !validURL(in.Website) {
		return nil, nil, apperr.Validation("please enter a valid website URL")
	}
	if !validURL(in.ImageURL) {
		return nil, nil, apperr.Validation("please enter a valid image URL")
	}

	email := strings.ToLower(strings.TrimSpace(in.Account.Email))
	count, err := s.userRepo.CountByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, apperr.Auth("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, apperr.Auth("hash password failed")
	}

	now := time.Now()
	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		Name:        strings.TrimSpace(in.Account.Name),
		Role:        entity.RoleRestaurantOwner,
		CurrentTier: "bronze",
		LastLogin:   &now,
	}
	rest := &entity.Restaurant{
		Name:         in.RestaurantName,
		Description:  in.Description,
		CuisineType:  in.CuisineType,
		Address:      in.Address,
		Phone:        in.Phone,
		Website:      in.Website,
		ImageURL:     in.ImageURL,
		IsActive:     true,
		OpeningHours: entity.DefaultOpeningHours(),
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return apperr.Store("create owner", err)
		}
		rest.UserID = user.ID
		if err := tx.Create(rest).Error; err != nil {
			return apperr.Store("create restaurant", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return user, rest, nil
}

// LogIn verifies credentials and issues a bearer token.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, apperr.Auth("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Auth("invalid credentials")
	}

	now := time.Now()
	_ = s.userRepo.Update(ctx, user.ID, map[string]any{"last_login": now})
	user.LastLogin = &now

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Auth("cannot generate token")
	}
	return token, user, nil
}

// SendReset issues a one-hour reset token. Delivery is up to the caller; the
// token is returned so it can be mailed out.
func (s *AuthService) SendReset(ctx context.Context, email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperr.Auth("unknown email")
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	expiry := time.Now().Add(time.Hour)

	if err := s.userRepo.Update(ctx, user.ID, map[string]any{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, userID)
}

// UpdateDisplayName changes the profile's display name.
func (s *AuthService) UpdateDisplayName(ctx context.Context, userID uint, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	if err := s.userRepo.Update(ctx, userID, map[string]any{"name": name}); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(ctx, userID)
}

// ResolveRole returns the user's role. The profile record is the source of
// truth; the cache is only consulted as a hint and refreshed on a miss.
func (s *AuthService) ResolveRole(ctx context.Context, userID uint) (string, error) {
	if role, ok := s.roleCache.Get(ctx, userID); ok {
		return role, nil
	}
	role, err := s.userRepo.RoleByID(ctx, userID)
	if err != nil {
		return "", err
	}
	s.roleCache.Set(ctx, userID, role)
	return role, nil
}

// RestaurantFor returns the owner's restaurant record, if any.
func (s *AuthService) RestaurantFor(ctx context.Context, userID uint) (*entity.Restaurant, error) {
	return s.restRepo.FindByOwner(ctx, userID)
}
