package signup

import (
	"context"
	"fmt"

	"github.com/outputfield/web/pkg/sanity"
)

// SanityClient is the subset of *sanity.Client the store needs.
type SanityClient interface {
	Create(ctx context.Context, doc any) (sanity.MutationResult, error)
	Ping(ctx context.Context) error
}

// SanityStore writes sign-up documents to a Sanity dataset.
type SanityStore struct {
	client SanityClient
}

func NewSanityStore(client SanityClient) *SanityStore {
	return &SanityStore{client: client}
}

func (s *SanityStore) Create(ctx context.Context, doc Document) error {
	if _, err := s.client.Create(ctx, doc); err != nil {
		return fmt.Errorf("sanity store: %w", err)
	}
	return nil
}

// Healthcheck reports whether the dataset is reachable.
func (s *SanityStore) Healthcheck(ctx context.Context) error {
	return s.client.Ping(ctx)
}
