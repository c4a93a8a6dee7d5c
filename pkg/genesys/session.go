package genesys

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenAcquirer performs a credential grant against the identity provider.
// clientcredentials.Config satisfies it.
type TokenAcquirer interface {
	Token(ctx context.Context) (*oauth2.Token, error)
}

// SessionConfig holds the OAuth client used for the client-credentials grant.
type SessionConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	HTTPClient   *http.Client // optional, used for the token request
}

// Session caches at most one access token.
//
// There is no expiry tracking: a cached token is reused until Invalidate is called, which every
// Client call does when it fails. The lock only guards reads and writes of the cached value; two
// concurrent acquisitions may race and the last one to finish wins.
type Session struct {
	acquirer   TokenAcquirer
	httpClient *http.Client

	mu    sync.Mutex
	token *oauth2.Token
}

// NewSession creates a Session backed by the client-credentials grant.
func NewSession(cfg SessionConfig) *Session {
	cc := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	return &Session{
		acquirer:   cc,
		httpClient: cfg.HTTPClient,
	}
}

// NewSessionWithAcquirer creates a Session with a custom acquirer.
func NewSessionWithAcquirer(acquirer TokenAcquirer) *Session {
	return &Session{acquirer: acquirer}
}

// Credential returns the cached token, acquiring a fresh one when the cache is empty.
func (s *Session) Credential(ctx context.Context) (*oauth2.Token, error) {
	s.mu.Lock()
	cached := s.token
	s.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	if s.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	}

	token, err := s.acquirer.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("genesys: client credentials grant: %w", err)
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return token, nil
}

// Invalidate drops the cached token. Safe to call repeatedly.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.token = nil
	s.mu.Unlock()
}

// Cached reports whether a token is currently cached.
func (s *Session) Cached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != nil
}
