package genesys

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"golang.org/x/oauth2"
)

type fakeAcquirer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeAcquirer) Token(ctx context.Context) (*oauth2.Token, error) {
	n := f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &oauth2.Token{AccessToken: "token-" + string(rune('0'+n)), TokenType: "Bearer"}, nil
}

func TestSession_Credential(t *testing.T) {
	t.Run("caches the first grant", func(t *testing.T) {
		acq := &fakeAcquirer{}
		s := NewSessionWithAcquirer(acq)

		first, err := s.Credential(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := s.Credential(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.AccessToken != second.AccessToken {
			t.Errorf("expected cached token, got %q then %q", first.AccessToken, second.AccessToken)
		}
		if got := acq.calls.Load(); got != 1 {
			t.Errorf("expected 1 grant, got %d", got)
		}
		if !s.Cached() {
			t.Error("expected token to be cached")
		}
	})

	t.Run("invalidate forces a new grant", func(t *testing.T) {
		acq := &fakeAcquirer{}
		s := NewSessionWithAcquirer(acq)

		first, _ := s.Credential(context.Background())
		s.Invalidate()
		if s.Cached() {
			t.Fatal("expected empty cache after Invalidate")
		}
		second, err := s.Credential(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.AccessToken == second.AccessToken {
			t.Errorf("expected a fresh token after Invalidate, got %q twice", first.AccessToken)
		}
		if got := acq.calls.Load(); got != 2 {
			t.Errorf("expected 2 grants, got %d", got)
		}
	})

	t.Run("invalidate on empty cache is a no-op", func(t *testing.T) {
		s := NewSessionWithAcquirer(&fakeAcquirer{})
		s.Invalidate()
		s.Invalidate()
		if s.Cached() {
			t.Error("expected empty cache")
		}
	})

	t.Run("grant failure is wrapped and not cached", func(t *testing.T) {
		cause := errors.New("invalid_client")
		s := NewSessionWithAcquirer(&fakeAcquirer{err: cause})

		_, err := s.Credential(context.Background())
		if !errors.Is(err, cause) {
			t.Fatalf("expected wrapped cause, got %v", err)
		}
		if s.Cached() {
			t.Error("failed grant must not populate the cache")
		}
	})
}

func TestSession_ConcurrentCredentialAndInvalidate(t *testing.T) {
	acq := &fakeAcquirer{}
	s := NewSessionWithAcquirer(acq)

	const workers = 16
	const rounds = 50

	var wg sync.WaitGroup
	errs := make(chan error, workers*rounds)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				tok, err := s.Credential(context.Background())
				if err != nil {
					errs <- err
					continue
				}
				if tok == nil || tok.AccessToken == "" {
					errs <- errors.New("empty token")
				}
				if (i+j)%3 == 0 {
					s.Invalidate()
				}
				_ = s.Cached()
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent credential: %v", err)
	}
	if got := acq.calls.Load(); got < 1 || got > workers*rounds {
		t.Errorf("grants = %d, want between 1 and %d", got, workers*rounds)
	}

	s.Invalidate()
	if s.Cached() {
		t.Error("expected empty cache after final Invalidate")
	}
}

func TestNewSession_ClientCredentials(t *testing.T) {
	var grants atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		grants.Add(1)
		if err := r.ParseForm(); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.PostForm.Get("grant_type"); got != "client_credentials" {
			t.Errorf("grant_type = %q, want client_credentials", got)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "client-id" || pass != "client-secret" {
			t.Errorf("unexpected basic auth %q:%q (ok=%v)", user, pass, ok)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"abc","token_type":"bearer","expires_in":86399}`))
	}))
	defer srv.Close()

	s := NewSession(SessionConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		TokenURL:     srv.URL,
		HTTPClient:   srv.Client(),
	})

	tok, err := s.Credential(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.AccessToken != "abc" {
		t.Errorf("AccessToken = %q, want abc", tok.AccessToken)
	}

	if _, err := s.Credential(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := grants.Load(); got != 1 {
		t.Errorf("expected 1 token request, got %d", got)
	}
}
