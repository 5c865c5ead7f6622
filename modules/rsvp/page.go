package rsvp

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/outputfield/web/pkg/ui"
)

// PageParams feeds the RSVP page.
type PageParams struct {
	Days []Day
	// LogoSrc defaults to /static/SGLogo.png.
	LogoSrc string
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

// Page renders the full RSVP document.
func Page(p PageParams) templ.Component {
	return ui.Page(ui.PageProps{Title: "RSVP", BodyClass: "bg-gray-300 min-h-screen"}, Content(p))
}

// Content is the page body without the document shell.
func Content(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		parts := []templ.Component{
			raw(`<div class="flex justify-center pt-20"><div class="container"><div class="grid grid-rows-1 grid-auto-cols gap-10">`),
			header(p.LogoSrc),
			raw(`<div class="row-start-1 col-start-2"><div class="grid grid-auto-rows grid-cols-rsvp gap-x-16 gap-y-10">`),
		}
		for i, d := range p.Days {
			parts = append(parts, day(d, i+1))
		}
		parts = append(parts,
			raw(`<div class="col-start-1 row-start-2 col-span-2"><div class="font-serif text-4xl italic">`),
			text(FundraisingMessage),
			raw(`</div></div><div class="col-start-3 row-start-2"><div class="text-center mt-3">`),
			ui.SignUpButton(ui.ButtonProps{Label: "Donate"}),
			raw(`</div></div>`),
			raw(`</div></div></div></div></div>`),
		)

		for _, c := range parts {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, s)
	})
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, templ.EscapeString(s))
	})
}

func header(logoSrc string) templ.Component {
	if logoSrc == "" {
		logoSrc = "/static/SGLogo.png"
	}
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range []templ.Component{
			raw(`<div class="p-5 text-center row-start-1 col-start-1 w-64"><div class="text-center flex flex-col"><div class="mb-6">`),
			ui.Image(ui.ImageProps{Src: logoSrc, Alt: "decorative arc", Width: 222, Height: 200}),
			raw(`</div>`),
			ui.Link(ui.LinkProps{Href: "/", Target: "_blank", Class: "uppercase", Label: "Output Field"}),
			raw(`<div class="uppercase text-lg">Debut showcase</div></div></div>`),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func day(d Day, col int) templ.Component {
	colClass := "col-start-" + strconv.Itoa(col)

	section := func(height, title, body string) templ.Component {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			return write(w, `<div class="`+height+` text-lg leading-snug"><h3 class="text-lg font-bold pb-1">`+
				templ.EscapeString(title)+`</h3><div>`+templ.EscapeString(body)+`</div></div>`)
		})
	}

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, c := range []templ.Component{
			raw(`<div class="` + templ.EscapeString(colClass) + ` row-start-1"><div class="pb-6">`),
			raw(`<div class="font-serif italic text-gray-700 pb-2 text-base">`), text(d.Weekday), raw(`</div>`),
			raw(`<div class="font-serif italic text-4xl pb-2">`), text(d.Date),
			raw(`<span class="text-base pl-4">`), text(d.Time), raw(`</span></div>`),
			ui.Link(ui.LinkProps{Href: d.RSVPURL, Target: "_blank", Class: "mb-6", Label: "RSVP"}),
			raw(`</div>`),
			section("h-24", "What Room is Opening?", d.Room),
			section("h-24", "What else is Happening?", d.Happening),
			section("h-28", "Who?", d.Who),
			raw(`<div class="text-md leading-snug"><div>`), text(d.Description), raw(`</div></div>`),
			raw(`</div>`),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
