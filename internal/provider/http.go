package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-clip/internal/config"
	"github.com/MKhiriev/go-vault-clip/internal/logger"
	"github.com/MKhiriev/go-vault-clip/models"
)

type restClient struct {
	client *HTTPClient
	logger *logger.Logger
}

// NewRESTClient constructs the HTTP/REST implementation of [Client]. It
// normalises and validates the base URL from vaultCfg.APIAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if vaultCfg.APIAddress is empty or cannot be parsed as
// a valid URL.
func NewRESTClient(vaultCfg config.Vault, log *logger.Logger) (Client, error) {
	client := NewHTTPClient()
	baseURL, err := normalizeBaseURL(vaultCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid provider API address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(vaultCfg.RequestTimeout)

	return &restClient{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

type signInResponse struct {
	Token string `json:"token"`
}

type listedItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
}

type itemResponse struct {
	ID       string             `json:"id"`
	Title    string             `json:"title"`
	Category string             `json:"category"`
	Details  models.ItemDetails `json:"details"`
}

type totpResponse struct {
	Code string `json:"code"`
}

// SignIn implements [Client]. It POSTs the credentials to
// POST /api/v1/auth/signin and returns the issued session token. A 401 or
// 403 response maps to [ErrAuthFailed].
func (r *restClient) SignIn(ctx context.Context, req SignInRequest) (string, error) {
	var result signInResponse

	resp, err := r.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/auth/signin")
	if err != nil {
		return "", fmt.Errorf("%w: sign-in request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.Token == "" {
		return "", fmt.Errorf("%w: sign-in response carried no token", ErrUnavailable)
	}

	r.logger.Info().Str("email", req.Email).Msg("signed in to vault")
	return result.Token, nil
}

// ListItems implements [Client]. It GETs /api/v1/items and converts each
// listed item into a [models.IndexEntry], preserving the provider's order.
// Unknown categories are carried through as [models.KindUnknown].
func (r *restClient) ListItems(ctx context.Context, token string) ([]models.IndexEntry, error) {
	var listed []listedItem

	resp, err := r.request(ctx).
		SetAuthToken(token).
		SetResult(&listed).
		Get("/api/v1/items")
	if err != nil {
		return nil, fmt.Errorf("%w: list items request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	entries := make([]models.IndexEntry, 0, len(listed))
	for _, item := range listed {
		entries = append(entries, models.IndexEntry{
			Identifier: item.ID,
			Title:      item.Title,
			Kind:       models.ParseTemplateKind(item.Category),
		})
	}

	r.logger.Debug().Int("count", len(entries)).Msg("fetched vault listing")
	return entries, nil
}

// GetItem implements [Client]. It GETs /api/v1/items/{id} and returns the
// full decoded record.
func (r *restClient) GetItem(ctx context.Context, token, identifier string) (models.ItemRecord, error) {
	var item itemResponse

	resp, err := r.request(ctx).
		SetAuthToken(token).
		SetResult(&item).
		SetPathParam("id", identifier).
		Get("/api/v1/items/{id}")
	if err != nil {
		return models.ItemRecord{}, fmt.Errorf("%w: get item request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ItemRecord{}, err
	}

	return models.ItemRecord{
		Identifier: item.ID,
		Title:      item.Title,
		Kind:       models.ParseTemplateKind(item.Category),
		Details:    item.Details,
	}, nil
}

// GetTotp implements [Client]. It GETs /api/v1/items/{id}/totp and returns
// the live code. The response is never persisted.
func (r *restClient) GetTotp(ctx context.Context, token, identifier string) (string, error) {
	var result totpResponse

	resp, err := r.request(ctx).
		SetAuthToken(token).
		SetResult(&result).
		SetPathParam("id", identifier).
		Get("/api/v1/items/{id}/totp")
	if err != nil {
		return "", fmt.Errorf("%w: get totp request: %v", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Code, nil
}

func (r *restClient) request(ctx context.Context) *resty.Request {
	return r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-ID", uuid.NewString())
}
