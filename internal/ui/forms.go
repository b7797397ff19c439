package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zenith-music/zenith/internal/models"
)

// form is a vertical group of [textinput.Model] fields with one focused at a
// time. Tab and shift+tab move focus; everything else goes to the focused
// field.
type form struct {
	title  string
	inputs []textinput.Model
	focus  int
}

func newForm(title string, fields ...textinput.Model) *form {
	f := &form{title: title, inputs: fields}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func textField(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 128
	ti.Width = 40
	return ti
}

func passwordField(placeholder string) textinput.Model {
	ti := textField(placeholder)
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// cycle moves focus by delta, wrapping around the field list.
func (f *form) cycle(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Update routes a message to the focused field, handling tab navigation.
func (f *form) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.cycle(1)
			return nil
		case "shift+tab", "up":
			f.cycle(-1)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// Value returns the trimmed value of field i.
func (f *form) Value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// View renders the form with its title.
func (f *form) View(p *Palette) string {
	var b strings.Builder
	b.WriteString(p.title.Render(f.title))
	b.WriteString("\n")
	for i := range f.inputs {
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
	}
	return b.String()
}

func newLoginForm() *form {
	return newForm("Log In", textField("username"), passwordField("password"))
}

func newSignupForm() *form {
	return newForm("Sign Up", textField("username"), textField("email"), passwordField("password"))
}

// newProfileForm pre-fills the edit form from the stored profile. Genres are
// edited as a comma-separated line.
func newProfileForm(profile models.Profile) *form {
	bio := textField("bio")
	bio.SetValue(profile.Bio)
	genres := textField("favorite genres (comma separated)")
	genres.SetValue(strings.Join(profile.Genres, ", "))
	avatar := textField("avatar")
	avatar.SetValue(profile.Avatar)
	return newForm("Edit Profile", bio, genres, avatar)
}

// splitGenres parses the comma-separated genre line back into a slice,
// dropping empty entries.
func splitGenres(line string) []string {
	parts := strings.Split(line, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}
