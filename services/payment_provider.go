package services

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
)

// CheckoutSession is what a payment provider hands back when a checkout
// is started
type CheckoutSession struct {
	ID  string
	URL string
}

// CheckoutProvider abstracts the external payment provider. The core only
// ever starts a session and later asks whether it was paid; everything
// else (cards, webhooks, refunds) stays on the provider's side.
type CheckoutProvider interface {
	CreateSession(productName string, amountCents int) (*CheckoutSession, error)
	IsPaid(sessionID string) (bool, error)
}

// LocalCheckoutProvider is an in-process provider used for development
// and tests. Sessions are held in memory and considered paid as soon as
// they exist.
type LocalCheckoutProvider struct {
	mu       sync.Mutex
	sessions map[string]bool
}

// NewLocalCheckoutProvider creates an empty local provider
func NewLocalCheckoutProvider() *LocalCheckoutProvider {
	return &LocalCheckoutProvider{sessions: make(map[string]bool)}
}

// CreateSession registers a new session and returns a redirect URL
// pointing at the client's upgrade page
func (p *LocalCheckoutProvider) CreateSession(productName string, amountCents int) (*CheckoutSession, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	clientURL := os.Getenv("CLIENT_URL")
	if clientURL == "" {
		clientURL = "http://localhost:5173"
	}

	sessionID := "cs_" + uuid.NewString()
	p.sessions[sessionID] = true

	return &CheckoutSession{
		ID:  sessionID,
		URL: fmt.Sprintf("%s/dashboard/hr/upgrade-package?success=1&session_id=%s", clientURL, sessionID),
	}, nil
}

// IsPaid reports whether the session exists and has been paid
func (p *LocalCheckoutProvider) IsPaid(sessionID string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	paid, ok := p.sessions[sessionID]
	if !ok {
		return false, nil
	}
	return paid, nil
}
