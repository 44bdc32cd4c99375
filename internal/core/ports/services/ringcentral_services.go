package services

import (
	"context"

	"github.com/activitydash/activity_dashboard_app/internal/core/domain"
	"github.com/activitydash/activity_dashboard_app/internal/dto"
)

// ProviderConnectionSvc drives the OAuth authorization-code flow with the
// telephony provider.
type ProviderConnectionSvc interface {
	// AuthorizeURL builds the provider's authorize endpoint URL with this
	// app's client id, redirect URI and the fixed opaque state value.
	AuthorizeURL() string

	// Exchange swaps an authorization code for token material. The
	// credential is handed back to the caller for cookie storage; it is
	// never retained server-side.
	Exchange(ctx context.Context, code string) (*domain.ProviderCredential, error)
}

// ProviderGatewaySvc performs authenticated, read-only calls against the
// provider's REST API. Every call takes the credential explicitly; there is
// no cached client and no ambient connection state.
type ProviderGatewaySvc interface {
	// FetchCallLog retrieves the trailing 30 days of account call log
	// (up to 100 detailed records) joined with the enabled user extension
	// listing to build the extension id lookup map.
	FetchCallLog(ctx context.Context, cred domain.ProviderCredential) (*dto.CallLogResponse, error)

	// FetchMessages retrieves the trailing 30 days of SMS/Pager messages
	// (up to 100 records).
	FetchMessages(ctx context.Context, cred domain.ProviderCredential) (*dto.MessageResponse, error)

	// FetchExtensions retrieves up to 100 enabled user-type extensions.
	FetchExtensions(ctx context.Context, cred domain.ProviderCredential) (*dto.ExtensionResponse, error)
}

// RingCentralSvcFacade combines the connection manager and data gateway.
type RingCentralSvcFacade interface {
	ProviderConnectionSvc
	ProviderGatewaySvc
}
