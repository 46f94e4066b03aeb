package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-fin-sync/internal/store"
	"github.com/MKhiriev/go-fin-sync/internal/utils"
	"github.com/MKhiriev/go-fin-sync/models"
)

type clientAuthService struct {
	kv store.KeyValueStore
}

// NewClientAuthService returns a ClientAuthService that keeps the token in
// the local key-value store under [store.KeyAccessToken].
func NewClientAuthService(kv store.KeyValueStore) ClientAuthService {
	return &clientAuthService{kv: kv}
}

func (a *clientAuthService) AccessToken(ctx context.Context) (string, error) {
	var token string
	err := a.kv.GetObject(ctx, store.KeyAccessToken, &token)
	if errors.Is(err, store.ErrKeyNotFound) {
		return "", ErrNoAuthToken
	}
	if err != nil {
		return "", fmt.Errorf("error reading access token: %w", err)
	}

	if strings.TrimSpace(token) == "" {
		return "", ErrNoAuthToken
	}

	return token, nil
}

func (a *clientAuthService) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		if err := a.kv.Delete(ctx, store.KeyAccessToken); err != nil {
			return fmt.Errorf("error clearing access token: %w", err)
		}
		return nil
	}

	if _, err := utils.ParseUserFromJWT(token); err != nil {
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	if err := a.kv.SetObject(ctx, store.KeyAccessToken, token); err != nil {
		return fmt.Errorf("error saving access token: %w", err)
	}
	return nil
}

func (a *clientAuthService) CurrentUser(ctx context.Context) (models.User, error) {
	token, err := a.AccessToken(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := utils.ParseUserFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return user, nil
}
