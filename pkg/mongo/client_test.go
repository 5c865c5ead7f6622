package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outputfield/web/pkg/mongo"
)

func TestConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	var cfg mongo.Config
	require.NoError(t, env.Parse(&cfg))
	assert.Equal(t, "outputfield", cfg.Database)
	assert.Equal(t, "signups", cfg.Collection)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
}

func TestNewInvalidURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.New(context.Background(), mongo.Config{
		ConnectionURL: "not-a-mongo-url",
		RetryAttempts: 2,
		RetryInterval: time.Millisecond,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNewCancelledBetweenRetries(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := mongo.New(ctx, mongo.Config{
		ConnectionURL: "not-a-mongo-url",
		RetryAttempts: 5,
		RetryInterval: time.Hour,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	assert.ErrorIs(t, err, context.Canceled)
}
