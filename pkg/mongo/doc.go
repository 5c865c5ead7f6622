// Package mongo connects to MongoDB with settings taken from MONGODB_*
// environment variables.
//
//	var cfg mongo.Config
//	config.MustLoad(&cfg)
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(context.Background())
//
//	coll := mongo.Collection(client, cfg)
//
// New pings the server before returning and retries a failed connection
// RetryAttempts times. Healthcheck adapts a client to a readiness probe.
package mongo
