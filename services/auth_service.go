package services

import (
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/password"
	"backend/repository"
	"backend/utils"

	"github.com/rs/zerolog"
)

// loginFailedMsg is deliberately the same for unknown email and wrong
// password, so a login probe cannot tell accounts apart.
const loginFailedMsg = "incorrect email or password"

// AuthService owns registration and login for both principal kinds. Users and
// restaurants live in separate tables, so email uniqueness is per kind.
type AuthService struct {
	userRepo  *repository.UserRepository
	restRepo  *repository.RestaurantRepository
	jwtSecret string
	jwtTTL    time.Duration
	log       zerolog.Logger
}

func NewAuthService(users *repository.UserRepository, rests *repository.RestaurantRepository, secret string, ttl time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:  users,
		restRepo:  rests,
		jwtSecret: secret,
		jwtTTL:    ttl,
		log:       log.With().Str("service", "auth").Logger(),
	}
}

type RegisterUserIn struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

func (s *AuthService) RegisterUser(in RegisterUserIn) (*entity.User, string, error) {
	email := normalizeEmail(in.Email)

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	if count > 0 {
		return nil, "", apperr.Conflict("user already exists")
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hashed,
		Phone:    strings.TrimSpace(in.Phone),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", apperr.Internal(err)
	}

	token, err := utils.GenerateToken(user.ID, entity.RoleUser, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	s.log.Info().Uint("userId", user.ID).Msg("user registered")
	return user, token, nil
}

func (s *AuthService) LoginUser(email, pass string) (string, *entity.User, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		s.log.Debug().Str("email", email).Msg("login failed: unknown user")
		return "", nil, apperr.Unauthorized(loginFailedMsg)
	}
	if !password.Verify(pass, user.Password) {
		s.log.Debug().Uint("userId", user.ID).Msg("login failed: bad password")
		return "", nil, apperr.Unauthorized(loginFailedMsg)
	}

	token, err := utils.GenerateToken(user.ID, entity.RoleUser, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, user, nil
}

type RegisterRestaurantIn struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Cuisine  string
	Address  entity.Address
}

func (s *AuthService) RegisterRestaurant(in RegisterRestaurantIn) (*entity.Restaurant, string, error) {
	email := normalizeEmail(in.Email)

	count, err := s.restRepo.CountByEmail(email)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	if count > 0 {
		return nil, "", apperr.Conflict("restaurant already exists")
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	rest := &entity.Restaurant{
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hashed,
		Phone:    strings.TrimSpace(in.Phone),
		Cuisine:  strings.TrimSpace(in.Cuisine),
		Address:  in.Address,
	}
	if err := s.restRepo.Create(rest); err != nil {
		return nil, "", apperr.Internal(err)
	}

	token, err := utils.GenerateToken(rest.ID, entity.RoleRestaurant, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}
	s.log.Info().Uint("restaurantId", rest.ID).Msg("restaurant registered")
	return rest, token, nil
}

func (s *AuthService) LoginRestaurant(email, pass string) (string, *entity.Restaurant, error) {
	email = normalizeEmail(email)
	rest, err := s.restRepo.FindByEmail(email)
	if err != nil {
		s.log.Debug().Str("email", email).Msg("login failed: unknown restaurant")
		return "", nil, apperr.Unauthorized(loginFailedMsg)
	}
	if !password.Verify(pass, rest.Password) {
		s.log.Debug().Uint("restaurantId", rest.ID).Msg("login failed: bad password")
		return "", nil, apperr.Unauthorized(loginFailedMsg)
	}

	token, err := utils.GenerateToken(rest.ID, entity.RoleRestaurant, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Internal(err)
	}
	return token, rest, nil
}

func (s *AuthService) GetUser(id uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("user not found")
	}
	return user, nil
}

func (s *AuthService) GetRestaurant(id uint) (*entity.Restaurant, error) {
	rest, err := s.restRepo.FindByID(id)
	if err != nil {
		return nil, apperr.NotFound("restaurant not found")
	}
	return rest, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
