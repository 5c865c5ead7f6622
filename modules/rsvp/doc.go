// Package rsvp renders the static RSVP page of the Skin Garden debut
// showcase: the three event days with their RSVP links, the fundraising
// note and the donate sign-up form.
package rsvp
