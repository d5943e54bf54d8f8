package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

var TimeNow = time.Now

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token expired")
	ErrMissingClaim  = errors.New("token claim missing")
)

const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
)

type TokenInfo struct {
	Subject    string
	Role       string
	Expiration time.Duration
}

// Claims are the verified fields of a token.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := jwt.MapClaims{
		"sub":  data.Subject,
		"role": data.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(data.Expiration).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Issue generates and signs a token in one step.
func (gen *JWTService) Issue(data TokenInfo) (string, error) {
	return gen.Sign(gen.Generate(data))
}

func (gen *JWTService) Validate(token string) (Claims, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}
	jwtToken, err := parser.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return gen.secret, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return Claims{}, ErrTokenNotValid
	}

	mapClaims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("jwt claims type assertion failed")
	}

	expVal, ok := mapClaims["exp"].(float64)
	if !ok {
		return Claims{}, fmt.Errorf("%w: exp", ErrMissingClaim)
	}
	expiresAt := time.Unix(int64(expVal), 0)
	if !TimeNow().Before(expiresAt) {
		return Claims{}, fmt.Errorf("token expired at %v: %w", expiresAt, ErrTokenExpired)
	}

	sub, _ := mapClaims["sub"].(string)
	if sub == "" {
		return Claims{}, fmt.Errorf("%w: sub", ErrMissingClaim)
	}
	role, _ := mapClaims["role"].(string)

	return Claims{
		Subject:   sub,
		Role:      role,
		ExpiresAt: expiresAt,
	}, nil
}
