package service

import (
	"errors"
	"fmt"
	"time"

	"gas_delivery/internal/models"
	"gas_delivery/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 8 * time.Hour

// Domain errors for auth flows.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingSigningKey  = errors.New("auth signing key is not configured")
)

// AuthService issues and verifies session tokens. Tokens are stateless;
// expiry is the only invalidation mechanism.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
}

func NewAuthService(repo repository.Authorization, cfg AuthConfig) *AuthService {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
	}
}

// Claims defines the JWT payload: identity plus the admin capability.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"usuario"`
	UserID   int    `json:"id"`
	IsAdmin  bool   `json:"es_admin"`
}

// Login validates credentials against the stored bcrypt hash and returns
// a signed token plus the user. Lookup misses and bad passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (string, *models.User, error) {
	if len(s.signingKey) == 0 {
		return "", nil, ErrMissingSigningKey
	}

	u, err := s.authRepo.GetByUsername(username)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	// bcrypt comparison is constant-time for matching cost hashes.
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ParseToken verifies signature and expiry and returns the identity.
func (s *AuthService) ParseToken(accessToken string) (Identity, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
	}, nil
}

// TokenTTL reports the session lifetime, used for the cookie max-age.
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *AuthService) issueToken(u *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: u.Username,
		UserID:   u.ID,
		IsAdmin:  u.IsAdmin,
	})
	return token.SignedString(s.signingKey)
}
