package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/activitydash/activity_dashboard_app/internal/apperrors"
	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	portssvc "github.com/activitydash/activity_dashboard_app/internal/core/ports/services"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
	"github.com/activitydash/activity_dashboard_app/internal/metrics"
	"github.com/activitydash/activity_dashboard_app/internal/platform/config"
	"golang.org/x/oauth2"
)

// Trailing window and page size for provider reads. The provider caps
// perPage at 100 anyway; the window is measured from the moment of the call.
const (
	providerWindow  = 30 * 24 * time.Hour
	providerPerPage = 100
)

// ringCentralService implements both the OAuth connection manager and the
// read-only data gateway against the RingCentral REST API.
type ringCentralService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
	httpClient   *http.Client
}

// NewRingCentralService creates the RingCentral service. The HTTP client
// carries the configured timeout so a hung provider call resolves as a
// slow failure instead of blocking a request forever.
func NewRingCentralService(cfg *config.Config) portssvc.RingCentralSvcFacade {
	return &ringCentralService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.RingCentralClientID,
			ClientSecret: cfg.RingCentralClientSecret,
			RedirectURL:  cfg.RingCentralRedirectURL,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.RingCentralServerURL + "/restapi/oauth/authorize",
				TokenURL:  cfg.RingCentralServerURL + "/restapi/oauth/token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: &http.Client{Timeout: cfg.ProviderHTTPTimeout},
	}
}

var _ portssvc.RingCentralSvcFacade = (*ringCentralService)(nil)

func (s *ringCentralService) AuthorizeURL() string {
	return s.oauth2Config.AuthCodeURL(s.cfg.RingCentralAuthState)
}

// Exchange swaps the authorization code for token material. No refresh flow
// is wired up: once the access token expires the connection degrades to
// "disconnected" until the user re-authorizes.
func (s *ringCentralService) Exchange(ctx context.Context, code string) (*domain.ProviderCredential, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	cred := &domain.ProviderCredential{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		ExpiresAt:    token.Expiry,
	}
	if scope, ok := token.Extra("scope").(string); ok {
		cred.Scope = scope
	}
	return cred, nil
}

func (s *ringCentralService) FetchCallLog(ctx context.Context, cred domain.ProviderCredential) (*dto.CallLogResponse, error) {
	query := url.Values{}
	query.Set("dateFrom", time.Now().Add(-providerWindow).UTC().Format(time.RFC3339))
	query.Set("perPage", strconv.Itoa(providerPerPage))
	query.Set("view", "Detailed")

	var callLog dto.CallLogResponse
	err := s.getJSON(ctx, cred, "/restapi/v1.0/account/~/call-log", query, &callLog)
	metrics.ObserveProviderFetch("call_log", err)
	if err != nil {
		return nil, err
	}

	// Join the extension listing so the client can attribute records to
	// employees by extension id.
	extensions, err := s.FetchExtensions(ctx, cred)
	if err != nil {
		return nil, err
	}
	callLog.ExtensionMap = buildExtensionMap(extensions.Records)

	return &callLog, nil
}

func (s *ringCentralService) FetchMessages(ctx context.Context, cred domain.ProviderCredential) (*dto.MessageResponse, error) {
	query := url.Values{}
	query.Set("dateFrom", time.Now().Add(-providerWindow).UTC().Format(time.RFC3339))
	query.Add("messageType", "SMS")
	query.Add("messageType", "Pager")
	query.Set("perPage", strconv.Itoa(providerPerPage))

	var messages dto.MessageResponse
	err := s.getJSON(ctx, cred, "/restapi/v1.0/account/~/extension/~/message-store", query, &messages)
	metrics.ObserveProviderFetch("messages", err)
	if err != nil {
		return nil, err
	}
	return &messages, nil
}

func (s *ringCentralService) FetchExtensions(ctx context.Context, cred domain.ProviderCredential) (*dto.ExtensionResponse, error) {
	query := url.Values{}
	query.Set("type", "User")
	query.Set("status", "Enabled")
	query.Set("perPage", strconv.Itoa(providerPerPage))

	var extensions dto.ExtensionResponse
	err := s.getJSON(ctx, cred, "/restapi/v1.0/account/~/extension", query, &extensions)
	metrics.ObserveProviderFetch("extensions", err)
	if err != nil {
		return nil, err
	}
	return &extensions, nil
}

// getJSON performs one authenticated GET against the provider. The
// credential is presented per call; nothing is cached across requests.
func (s *ringCentralService) getJSON(ctx context.Context, cred domain.ProviderCredential, path string, query url.Values, out any) error {
	reqURL := s.cfg.RingCentralServerURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+cred.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request to %s failed: %v: %w", path, err, apperrors.ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("provider returned %s for %s: %w", resp.Status, path, apperrors.ErrUpstream)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode provider response from %s: %v: %w", path, err, apperrors.ErrUpstream)
	}
	return nil
}

// buildExtensionMap indexes extensions by id for employee attribution.
// Extensions without a name fall back to "Ext <number>".
func buildExtensionMap(records []dto.ExtensionRecord) map[string]dto.ExtensionInfo {
	extensionMap := make(map[string]dto.ExtensionInfo, len(records))
	for _, ext := range records {
		name := ext.Name
		if name == "" {
			name = "Ext " + ext.ExtensionNumber
		}
		extensionMap[ext.ID] = dto.ExtensionInfo{
			Name:            name,
			ExtensionNumber: ext.ExtensionNumber,
		}
	}
	return extensionMap
}
