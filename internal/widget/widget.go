// Package widget renders remotely hosted Perch widgets inside an inline frame.
//
// Rendering is a pure mapping from Params to markup. Nothing is validated: an
// empty or malformed widget id still produces a well-formed frame whose source
// simply fails to load.
package widget

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

const (
	// DefaultBaseURL is the widget host; the widget id is appended as a path segment.
	DefaultBaseURL = "https://embeds.myperch.io/widgets/"
	// DefaultOrigin is the page origin reported to the widget.
	DefaultOrigin  = "https://docs.myperch.io"

	DefaultHeight = "724px"
	DefaultTitle  = "Perch Financial Tool"

	// FrameIDPrefix is prepended to the widget id to form the frame element id.
	FrameIDPrefix = "perch-widget-"
	frameClass    = "perch-widget"
)

// Params are the inputs of a single embedded widget
type Params struct {
	WidgetID string
	Height   string // CSS length
	Title    string // accessible label of the frame
}

// WithDefaults fills unset optional fields
func (p Params) WithDefaults() Params {
	if p.Height == "" {
		p.Height = DefaultHeight
	}
	if p.Title == "" {
		p.Title = DefaultTitle
	}
	return p
}

// Renderer builds frames against a widget host. The zero value uses the
// production host and origin.
type Renderer struct {
	BaseURL string
	Origin  string
}

func (r Renderer) baseURL() string {
	if r.BaseURL == "" {
		return DefaultBaseURL
	}
	if !strings.HasSuffix(r.BaseURL, "/") {
		return r.BaseURL + "/"
	}
	return r.BaseURL
}

func (r Renderer) origin() string {
	if r.Origin == "" {
		return DefaultOrigin
	}
	return r.Origin
}

// SourceURL returns the frame source for widgetID. The id is inserted as-is in
// both the path and the widget-id query value.
func (r Renderer) SourceURL(widgetID string) string {
	return fmt.Sprintf("%s%s?origin=%s&widget-id=%s&class=%s",
		r.baseURL(), widgetID, url.QueryEscape(r.origin()), widgetID, frameClass)
}

// Frame returns the component for p
func (r Renderer) Frame(p Params) templ.Component {
	p = p.WithDefaults()
	src := r.SourceURL(p.WidgetID)
	id := FrameID(p.WidgetID)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<div class="w-full"><iframe id="%s" src="%s" title="%s" class="w-full rounded-xl border-none" style="height: %s;" frameborder="0" allowfullscreen></iframe></div>`,
			templ.EscapeString(id),
			templ.EscapeString(src),
			templ.EscapeString(p.Title),
			templ.EscapeString(p.Height),
		)
		return err
	})
}

// Render returns the markup for p as a string
func (r Renderer) Render(ctx context.Context, p Params) (string, error) {
	var sb strings.Builder
	if err := r.Frame(p).Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// FrameID returns the element id of the frame for widgetID. Rendering the same
// widget twice on one page yields duplicate ids.
func FrameID(widgetID string) string {
	return FrameIDPrefix + widgetID
}

// SourceURL returns the production frame source for widgetID
func SourceURL(widgetID string) string {
	return Renderer{}.SourceURL(widgetID)
}

// Frame returns the production frame component for p
func Frame(p Params) templ.Component {
	return Renderer{}.Frame(p)
}

// Render returns the production frame markup for p
func Render(ctx context.Context, p Params) (string, error) {
	return Renderer{}.Render(ctx, p)
}
