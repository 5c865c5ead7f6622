// Package mailchimp subscribes email addresses to a Mailchimp audience
// through the Marketing API members endpoint.
//
//	var cfg mailchimp.Config
//	config.MustLoad(&cfg)
//
//	client := mailchimp.New(cfg)
//	if err := client.Subscribe(ctx, "user@example.com"); err != nil {
//		var apiErr *mailchimp.APIError
//		if errors.As(err, &apiErr) && apiErr.HTTPStatus() == http.StatusBadRequest {
//			// already a member, or otherwise rejected
//		}
//	}
//
// Each Subscribe issues exactly one request. Non-2xx answers are returned as
// *APIError carrying the provider status; transport failures wrap
// ErrRequestFailed.
package mailchimp
