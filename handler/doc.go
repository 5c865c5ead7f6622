// Package handler provides type-safe HTTP request handling for the site's routes.
//
// Handlers are generic functions that receive a bound request value and return
// a Response. Wrap turns them into http.HandlerFunc values for any router:
//
//	type Request struct {
//		Email any `json:"email"`
//	}
//
//	func signup(ctx handler.Context, req Request) handler.Response {
//		email, ok := req.Email.(string)
//		if !ok {
//			return handler.JSONError(handler.NewHTTPError(501, "Missing email."))
//		}
//		return handler.JSON(map[string]string{"email": email})
//	}
//
//	r.Post("/api/signup", handler.Wrap(signup,
//		handler.WithBinders[handler.Context, Request](binder.DataStar(), binder.JSON()),
//	))
//
// # Response Types
//
//   - JSON / JSONError: plain JSON bodies. Errors use the
//     {"statusCode": <code>, "message": <text>} shape of HTTPError.
//   - Templ / TemplWithStatus: templ components rendered as HTML, or patched
//     into the page over SSE when the request comes from DataStar.
//   - Redirect / RedirectWithCode: HTTP redirects, or an SSE redirect for DataStar.
//
// # Error Handling
//
// Binding and rendering errors go to the configured ErrorHandler.
// NewErrorHandler builds one that logs the error and chooses the output
// format from the request: a toast for DataStar, JSON for API clients, or
// a full error page for browsers.
package handler
