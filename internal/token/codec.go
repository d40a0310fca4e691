package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind — категория отказа проверки токена
type Kind string

const (
	KindMalformed     Kind = "malformed"
	KindBadSignature  Kind = "bad_signature"
	KindExpired       Kind = "expired"
	KindScopeMismatch Kind = "scope_mismatch"
)

// Error — ошибка проверки с устойчивым кодом; вызывающий отклоняет токен
// при любом коде, код нужен только для логов
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Identity — подтверждённая личность, извлечённая из валидного токена
type Identity struct {
	Subject string
}

// Claims — состав токена доступа
type Claims struct {
	jwt.RegisteredClaims
}

// Codec выпускает и проверяет подписанные HS256-токены. Состояния не держит,
// безопасен для конкурентного использования.
type Codec struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// Option настраивает Codec
type Option func(*Codec)

// WithClock подменяет источник времени (для тестов)
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret, issuer, audience string, ttl time.Duration, opts ...Option) *Codec {
	c := &Codec{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Issue выпускает токен для субъекта; jti уникален на каждый вызов, поэтому
// два токена одного субъекта никогда не совпадают
func (c *Codec) Issue(subject string) (string, error) {
	now := c.now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify проверяет подпись, issuer, audience и временное окно без допуска на
// рассинхронизацию часов; возвращает субъект либо *Error
func (c *Codec) Verify(raw string) (Identity, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		return Identity{}, &Error{Kind: classify(err), Err: err}
	}
	if claims.Subject == "" {
		return Identity{}, &Error{Kind: KindMalformed, Err: errors.New("empty subject")}
	}
	return Identity{Subject: claims.Subject}, nil
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return KindBadSignature
	case errors.Is(err, jwt.ErrTokenExpired), errors.Is(err, jwt.ErrTokenNotValidYet):
		return KindExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return KindScopeMismatch
	}
	return KindMalformed
}
