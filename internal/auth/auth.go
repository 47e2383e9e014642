package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kurochkinivan/result_analysis/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const issuer = "result_analysis"

type UserProvider interface {
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type UserCreator interface {
	CreateUser(ctx context.Context, user *domain.User) error
}

type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

type Service struct {
	log    *slog.Logger
	users  UserProvider
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewService(log *slog.Logger, users UserProvider, secret string, ttl time.Duration) *Service {
	return &Service{
		log:    log,
		users:  users,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Login checks the password and issues a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (string, domain.Identity, error) {
	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.Identity{}, domain.ErrInvalidCredentials
		}
		return "", domain.Identity{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.log.DebugContext(ctx, "password mismatch", slog.String("username", username))
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	id := user.Identity()

	token, err := s.IssueToken(id)
	if err != nil {
		return "", domain.Identity{}, err
	}

	return token, id, nil
}

func (s *Service) IssueToken(id domain.Identity) (string, error) {
	now := s.now()

	claims := Claims{
		Username: id.Username,
		IsAdmin:  id.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(id.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

// Identify validates a session token and returns the identity it carries.
func (s *Service) Identify(token string) (domain.Identity, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: invalid subject %q", domain.ErrUnauthenticated, claims.Subject)
	}

	return domain.Identity{
		UserID:   userID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}

// CreateUser hashes the password and stores a new account.
func CreateUser(ctx context.Context, users UserCreator, username, password string, isAdmin bool) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      isAdmin,
	}

	if err := users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}

	return user, nil
}
