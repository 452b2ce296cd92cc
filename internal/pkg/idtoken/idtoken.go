package idtoken

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"foodshare/internal/domain/identity"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrNoKeySource  = errors.New("no verification key configured")
	ErrUnknownKeyID = errors.New("unknown key id")
)

type Claims struct {
	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Picture     string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

type Options struct {
	HMACSecret string
	// PublicKeysPEM maps key ids to PEM encoded RSA public keys or certificates.
	PublicKeysPEM map[string]string
	// JWKSURL serves the identity provider's signing keys as a JSON Web Key Set.
	JWKSURL  string
	Issuer   string
	Audience string
}

// Verifier turns a bearer token into the caller's identity.
type Verifier struct {
	secret   []byte
	issuer   string
	audience string

	// static keys win over the remote set and are never replaced by a refresh
	static map[string]*rsa.PublicKey
	remote keyfunc.Keyfunc
}

// NewVerifier builds a verifier. With a JWKSURL the key set is refreshed in
// the background until ctx is done; unknown key ids trigger a rate limited
// refetch.
func NewVerifier(ctx context.Context, opts Options) (*Verifier, error) {
	v := &Verifier{
		issuer:   opts.Issuer,
		audience: opts.Audience,
		static:   map[string]*rsa.PublicKey{},
	}
	if opts.HMACSecret != "" {
		v.secret = []byte(opts.HMACSecret)
	}
	for kid, pemText := range opts.PublicKeysPEM {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(pemText))
		if err != nil {
			return nil, fmt.Errorf("parse public key %q: %w", kid, err)
		}
		v.static[kid] = key
	}
	if opts.JWKSURL != "" {
		remote, err := keyfunc.NewDefaultCtx(ctx, []string{opts.JWKSURL})
		if err != nil {
			return nil, fmt.Errorf("jwks %s: %w", opts.JWKSURL, err)
		}
		v.remote = remote
	}
	if v.secret == nil && len(v.static) == 0 && v.remote == nil {
		return nil, ErrNoKeySource
	}
	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, raw string) (identity.Identity, error) {
	methods := []string{}
	if v.secret != nil {
		methods = append(methods, jwt.SigningMethodHS256.Alg())
	}
	if v.remote != nil || len(v.static) > 0 {
		methods = append(methods, jwt.SigningMethodRS256.Alg())
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods(methods), jwt.WithExpirationRequired()}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return v.secret, nil
		case *jwt.SigningMethodRSA:
			return v.publicKey(ctx, token)
		default:
			return nil, ErrInvalidToken
		}
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return identity.Identity{}, ErrExpiredToken
		}
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return identity.Identity{}, ErrInvalidToken
	}

	name := claims.Name
	if name == "" {
		name = claims.DisplayName
	}
	id, err := identity.New(claims.Email, name, claims.Picture, claims.Subject)
	if err != nil {
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return id, nil
}

func (v *Verifier) publicKey(ctx context.Context, token *jwt.Token) (any, error) {
	kid, _ := token.Header["kid"].(string)
	if key, ok := v.static[kid]; ok {
		return key, nil
	}
	if v.remote == nil {
		return nil, ErrUnknownKeyID
	}
	key, err := v.remote.KeyfuncCtx(ctx)(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKeyID, err)
	}
	return key, nil
}

// Signer mints HS256 tokens. Used by the dev token command and tests.
type Signer struct {
	secret []byte
	issuer string
}

func NewSigner(secret, issuer string) *Signer {
	return &Signer{secret: []byte(secret), issuer: issuer}
}

func (s *Signer) Sign(id identity.Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:   strings.TrimSpace(id.Email),
		Name:    id.Name,
		Picture: id.PhotoURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
