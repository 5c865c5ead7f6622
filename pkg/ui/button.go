package ui

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const (
	// SignUpResultID is the element patched with the outcome of a submission.
	SignUpResultID = "signup-result"

	defaultSignUpAction = "/api/signup"
	defaultSignUpLabel  = "Sign up"
)

// ButtonProps configures SignUpButton.
type ButtonProps struct {
	Label       string
	Action      string
	Placeholder string
	Class       string
}

// SignUpButton renders the email sign-up form. The email input is bound to
// the email signal and submitting posts the signals to Action; the server
// answers by patching #signup-result.
func SignUpButton(p ButtonProps) templ.Component {
	if p.Label == "" {
		p.Label = defaultSignUpLabel
	}
	if p.Action == "" {
		p.Action = defaultSignUpAction
	}
	if p.Placeholder == "" {
		p.Placeholder = "you@example.com"
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("form", attrs(
			templ.KV[string, any]("class", classes("signup-form", p.Class)),
			templ.KV[string, any]("data-signals", "{email: ''}"),
			templ.KV[string, any]("data-on:submit__prevent", "@post('"+string(templ.URL(p.Action))+"')"),
			templ.KV[string, any]("data-indicator:sending", true),
		))
		hw.open("input", attrs(
			templ.KV[string, any]("type", "email"),
			templ.KV[string, any]("name", "email"),
			templ.KV[string, any]("autocomplete", "email"),
			templ.KV[string, any]("placeholder", p.Placeholder),
			templ.KV[string, any]("class", "signup-input"),
			templ.KV[string, any]("data-bind:email", true),
		))
		hw.open("button", attrs(
			templ.KV[string, any]("type", "submit"),
			templ.KV[string, any]("class", "signup-button"),
			templ.KV[string, any]("data-attr:disabled", "$sending"),
		))
		hw.text(p.Label)
		hw.close("button")
		hw.render(SignUpResult(SignUpResultProps{}))
		hw.close("form")
		return hw.err
	})
}

// SignUpResultProps describes a submission outcome. The zero value renders
// the empty placeholder.
type SignUpResultProps struct {
	Success bool
	Message string
}

// SignUpResult renders the #signup-result container.
func SignUpResult(p SignUpResultProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		state := ""
		if p.Message != "" {
			state = "signup-result--error"
			if p.Success {
				state = "signup-result--success"
			}
		}
		hw.open("div", templ.OrderedAttributes{
			templ.KV[string, any]("id", SignUpResultID),
			templ.KV[string, any]("class", classes("signup-result", state)),
			templ.KV[string, any]("role", "status"),
			templ.KV[string, any]("aria-live", "polite"),
		})
		hw.text(p.Message)
		hw.close("div")
		return hw.err
	})
}
