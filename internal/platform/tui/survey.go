package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/career-arcade/internal/survey"
)

// Survey field order.
const (
	fieldName = iota
	fieldDNI
	fieldPhone
	fieldDistrict
	fieldCount
)

var surveyLabels = [fieldCount]string{
	"Nombre completo",
	"DNI",
	"Teléfono",
	"Distrito",
}

// SurveyKeyMap defines the key bindings of the contact form.
type SurveyKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Submit key.Binding
	Close  key.Binding
}

// DefaultSurveyKeyMap returns default key bindings.
func DefaultSurveyKeyMap() SurveyKeyMap {
	return SurveyKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "siguiente"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "anterior"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "enviar"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cerrar"),
		),
	}
}

// SurveyModel is the post-victory contact form.
// Submitting a complete form produces the WhatsApp deep link.
type SurveyModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
	keys   SurveyKeyMap
	number string
	link   string
	err    error
	done   bool // Submitted or dismissed
	width  int
	height int
}

// NewSurveyModel creates an empty form that sends to number.
func NewSurveyModel(number string, width, height int) SurveyModel {
	m := SurveyModel{
		keys:   DefaultSurveyKeyMap(),
		number: number,
		width:  width,
		height: height,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = surveyLabels[i]
		ti.Prompt = "› "
		ti.CharLimit = 64
		ti.Width = 32
		m.inputs[i] = ti
	}
	m.inputs[fieldDNI].CharLimit = survey.DNIMaxLen
	m.inputs[fieldName].Focus()
	return m
}

// Init starts the cursor blink.
func (m SurveyModel) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the current field values.
func (m SurveyModel) Form() survey.Form {
	return survey.Form{
		Name:     m.inputs[fieldName].Value(),
		DNI:      m.inputs[fieldDNI].Value(),
		Phone:    m.inputs[fieldPhone].Value(),
		District: m.inputs[fieldDistrict].Value(),
	}
}

// Ready reports whether every field is filled.
func (m SurveyModel) Ready() bool {
	return m.Form().Validate() == nil
}

// Link returns the deep link produced by a successful submit.
func (m SurveyModel) Link() string { return m.link }

// Done reports whether the form was submitted or dismissed.
func (m SurveyModel) Done() bool { return m.done }

// Update handles messages for the form.
func (m SurveyModel) Update(msg tea.Msg) (SurveyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.done = true
			return m, nil
		case key.Matches(msg, m.keys.Next):
			return m.setFocus(m.focus + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.setFocus(m.focus - 1)
		case key.Matches(msg, m.keys.Submit):
			if !m.Ready() {
				// Enter moves through the fields until the form is complete.
				return m.setFocus(m.focus + 1)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.err = nil
	return m, cmd
}

func (m SurveyModel) setFocus(i int) (SurveyModel, tea.Cmd) {
	m.focus = (i + fieldCount) % fieldCount
	cmds := make([]tea.Cmd, 0, fieldCount)
	for j := range m.inputs {
		if j == m.focus {
			cmds = append(cmds, m.inputs[j].Focus())
			continue
		}
		m.inputs[j].Blur()
	}
	return m, tea.Batch(cmds...)
}

func (m SurveyModel) submit() (SurveyModel, tea.Cmd) {
	link, err := m.Form().DeepLink(m.number)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.link = link
	m.done = true
	return m, nil
}

var (
	surveyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	surveyLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	surveyFocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	surveyErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var surveyBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("10")).
	Padding(1, 3)

var buttonStyle = lipgloss.NewStyle().
	Padding(0, 2).
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("10")).
	Bold(true)

var buttonOffStyle = buttonStyle.
	Foreground(lipgloss.Color("245")).
	Background(lipgloss.Color("237"))

// View renders the form centered on the screen.
func (m SurveyModel) View() string {
	var b strings.Builder
	b.WriteString(surveyTitleStyle.Render("🏆 ¡Reclama tu premio!"))
	b.WriteString("\n")
	b.WriteString(surveyLabelStyle.Render("Déjanos tus datos y te contactamos por WhatsApp."))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		label := surveyLabelStyle
		if i == m.focus {
			label = surveyFocusStyle
		}
		b.WriteString(label.Render(surveyLabels[i]))
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}

	if m.Ready() {
		b.WriteString(buttonStyle.Render("ENVIAR POR WHATSAPP"))
	} else {
		b.WriteString(buttonOffStyle.Render("ENVIAR POR WHATSAPP"))
	}
	if m.err != nil {
		msg := m.err.Error()
		if errors.Is(m.err, survey.ErrIncomplete) {
			msg = "Completa todos los campos."
		}
		b.WriteString("\n")
		b.WriteString(surveyErrStyle.Render(msg))
	}

	box := surveyBoxStyle.Render(b.String())
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
