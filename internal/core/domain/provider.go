package domain

import "time"

// ProviderCredential is the OAuth token material returned by the telephony
// provider's token endpoint. It is serialized opaquely into the rc_token
// cookie and threaded as an explicit parameter into every gateway call,
// never held as ambient server-side state.
type ProviderCredential struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	Scope        string    `json:"scope,omitempty"`
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
}
