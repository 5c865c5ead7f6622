// Package sanity writes documents to a Sanity dataset through the HTTP
// mutations API.
//
//	client := sanity.New(cfg)
//	res, err := client.Create(ctx, map[string]any{"_type": "signupform"})
//
// Create sends a single create mutation and lets the dataset assign the
// document id, which is returned in MutationResult. Ping checks that the
// project and token are usable.
package sanity
