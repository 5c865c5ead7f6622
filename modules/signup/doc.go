// Package signup handles newsletter sign-ups: it validates an email
// address, subscribes it to the mailing list and records a signupform
// document in the content store.
//
// Mount the service under /api/signup:
//
//	svc := signup.NewService(mailchimpClient, signup.NewSanityStore(sanityClient),
//		signup.WithLogger(log),
//		signup.WithErrorHandler(errorHandler),
//	)
//	r.Mount("/api/signup", svc.Handle())
//
// Plain clients POST {"email": "..."} and receive {"email": "..."} or a
// {"statusCode", "message"} error. Requests sent by the DataStar sign-up form
// receive the same outcome rendered into #signup-result over SSE.
//
// The document is written only after the subscription succeeded. A failed
// write leaves the subscription in place and reports the generic failure.
package signup
