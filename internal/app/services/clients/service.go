// Package clients handles API client registration and bearer-token
// authentication.
package clients

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vietkitchen/recipes-api/internal/app/domain/client"
	"github.com/vietkitchen/recipes-api/internal/app/storage"
	"github.com/vietkitchen/recipes-api/internal/errors"
	"github.com/vietkitchen/recipes-api/pkg/logger"
)

// tokenBytes is the amount of randomness behind each access token; the
// hex-encoded token is twice this length. Collisions are vanishingly
// unlikely at this size and are not checked.
const tokenBytes = 16

// bearerPrefix is stripped from the Authorization header when present. A
// header without it is treated as a bare token.
const bearerPrefix = "Bearer "

// Service registers clients and resolves bearer tokens.
type Service struct {
	store storage.ClientStore
	log   *logger.Logger
}

// New constructs a client registry service.
func New(store storage.ClientStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.NewDefault("clients")
	}
	return &Service{store: store, log: log}
}

// Register creates a client with a freshly issued access token and returns
// the token. The email must not already be registered (exact match).
func (s *Service) Register(ctx context.Context, name, email string) (string, error) {
	if name == "" || email == "" {
		return "", errors.Validation("clientName and clientEmail required")
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	c := client.Client{Name: name, Email: email, Token: token}
	if _, err := s.store.CreateClient(ctx, c); err != nil {
		return "", err
	}

	s.log.WithField("email", email).Info("API client registered")
	return token, nil
}

// Authenticate resolves the Authorization header to a registered client.
// The "Bearer " prefix is stripped when present; otherwise the whole header
// value is tried as the token. A missing header yields an empty-string
// lookup, which never matches.
func (s *Service) Authenticate(ctx context.Context, bearerHeader string) (client.Client, error) {
	token := strings.TrimPrefix(bearerHeader, bearerPrefix)
	return s.store.GetClientByToken(ctx, token)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
