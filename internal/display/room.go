package display

import (
	"fmt"
	"io"
	"maps"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixil98/text-adventure/internal/game"
)

// DefaultRoomTemplate draws the room header, description, visible items and
// exits.
const DefaultRoomTemplate = `
{{ header .Name }}
{{ wrap .Description }}
{{- if .Items }}

You see:
{{- range .Items }}
 - {{ . }}
{{- end }}
{{- end }}

Exits: {{ if .Exits }}{{ join ", " .Exits }}{{ else }}none{{ end }}
`

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("205"))

// RoomView is the template-facing view of a room.
type RoomView struct {
	ID          string
	Name        string
	Description string
	Items       []string
	Exits       []string
}

// NewRoomView builds the view of r. Exits are listed in canonical direction
// order.
func NewRoomView(r *game.Room) RoomView {
	return RoomView{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Items:       r.ItemNames(),
		Exits:       r.Directions(),
	}
}

// Renderer draws rooms for the player.
type Renderer struct {
	tmplText string
	width    int
	styled   bool

	tmpl *template.Template
}

type RendererOpt func(*Renderer)

// WithWidth sets the column descriptions wrap at.
func WithWidth(width int) RendererOpt {
	return func(r *Renderer) {
		r.width = width
	}
}

// WithTemplate replaces the default room template. An empty string keeps
// the default.
func WithTemplate(text string) RendererOpt {
	return func(r *Renderer) {
		if text != "" {
			r.tmplText = text
		}
	}
}

// WithStyle turns header colouring on or off.
func WithStyle(styled bool) RendererOpt {
	return func(r *Renderer) {
		r.styled = styled
	}
}

// NewRenderer parses the room template. Templates get the sprig functions
// plus wrap and header.
func NewRenderer(opts ...RendererOpt) (*Renderer, error) {
	r := &Renderer{
		tmplText: DefaultRoomTemplate,
		width:    DefaultWidth,
	}
	for _, opt := range opts {
		opt(r)
	}

	funcs := sprig.TxtFuncMap()
	maps.Copy(funcs, template.FuncMap{
		"wrap":   r.wrap,
		"header": r.header,
	})

	tmpl, err := template.New("room").Funcs(funcs).Parse(r.tmplText)
	if err != nil {
		return nil, fmt.Errorf("parsing room template: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

// Render writes the room to w.
func (r *Renderer) Render(w io.Writer, room *game.Room) error {
	if err := r.tmpl.Execute(w, NewRoomView(room)); err != nil {
		return fmt.Errorf("executing room template: %w", err)
	}
	return nil
}

func (r *Renderer) wrap(text string) string {
	return Wrap(text, r.width)
}

func (r *Renderer) header(name string) string {
	h := fmt.Sprintf("=== %s ===", name)
	if r.styled {
		return headerStyle.Render(h)
	}
	return h
}
