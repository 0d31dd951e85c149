package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/career-arcade/internal/carousel"
	"github.com/vovakirdan/career-arcade/internal/config"
	"github.com/vovakirdan/career-arcade/internal/registry"
)

// CarouselModel shows one career card at a time and opens its game.
type CarouselModel struct {
	car    *carousel.Carousel
	keys   CarouselKeyMap
	help   help.Model
	width  int
	height int

	selected    string // Game id chosen with Play
	showResults bool
	quitting    bool
}

// NewCarouselModel creates a carousel over the catalogue's careers whose
// games are registered.
func NewCarouselModel(cfg config.CareersConfig, width, height int, now time.Time) CarouselModel {
	slides := make([]config.Career, 0, len(cfg.Careers))
	for _, c := range cfg.Careers {
		if registry.Exists(c.Game) {
			slides = append(slides, c)
		}
	}

	return CarouselModel{
		car:    carousel.New(slides, cfg.Rotate(), now),
		keys:   DefaultCarouselKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Init starts polling the auto-advance deadline.
func (m CarouselModel) Init() tea.Cmd {
	return rotateCmd()
}

// Update handles messages for the carousel.
func (m CarouselModel) Update(msg tea.Msg) (CarouselModel, tea.Cmd) {
	switch msg := msg.(type) {
	case RotateMsg:
		m.car.Tick(time.Time(msg))
		return m, rotateCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.car.Prev()
		case key.Matches(msg, m.keys.Next):
			m.car.Next()
		case key.Matches(msg, m.keys.Play):
			if m.car.Len() > 0 {
				m.selected = m.car.Current().Game
			}
		case key.Matches(msg, m.keys.Results):
			m.showResults = true
		default:
			// Number keys jump to a slide like the dot indicators.
			if n, err := strconv.Atoi(msg.String()); err == nil {
				m.car.Select(n - 1)
			}
		}
	}
	return m, nil
}

// Open marks a game as open; auto-advance stops until Return.
func (m *CarouselModel) Open() {
	m.selected = ""
	m.car.Hold()
}

// Return resumes the carousel after a game closes.
func (m *CarouselModel) Return(now time.Time) {
	m.car.Release(now)
}

// Selected returns the chosen game id, or "".
func (m CarouselModel) Selected() string { return m.selected }

// WantsResults reports whether the results board was requested.
func (m CarouselModel) WantsResults() bool { return m.showResults }

// ResultsShown clears the results request.
func (m *CarouselModel) ResultsShown() { m.showResults = false }

// IsQuitting reports whether the user quit.
func (m CarouselModel) IsQuitting() bool { return m.quitting }

// Carousel exposes the slide state.
func (m CarouselModel) Carousel() *carousel.Carousel { return m.car }

var (
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cardDescStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	cardLinkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("117")).Underline(true)
	arrowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2)
	dotOnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	dotOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	logoStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("10")).
	Padding(1, 4).
	Width(52)

// View renders the current career card.
func (m CarouselModel) View() string {
	if m.quitting {
		return ""
	}

	var card string
	if m.car.Len() == 0 {
		card = cardStyle.Render(cardDescStyle.Render("No hay carreras disponibles."))
	} else {
		c := m.car.Current()
		title := c.Title
		if info, ok := registry.Info(c.Game); ok {
			title = info.Title + "\n" + c.Title
		}
		body := cardTitleStyle.Render(title) + "\n\n" +
			cardDescStyle.Render(c.Description) + "\n\n" +
			cardLinkStyle.Render(c.URL) + "\n\n" +
			buttonStyle.Render("🎮 JUGAR")
		card = cardStyle.Render(body)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center,
		arrowStyle.Render("‹"), card, arrowStyle.Render("›"))

	dots := make([]string, m.car.Len())
	for i := range dots {
		if i == m.car.Index() {
			dots[i] = dotOnStyle.Render("━━")
		} else {
			dots[i] = dotOffStyle.Render("●")
		}
	}

	view := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render("CEVATUR"),
		"",
		row,
		"",
		strings.Join(dots, " "),
		"",
		helpStyle.Render(m.help.View(m.keys)),
	)
	if m.width <= 0 || m.height <= 0 {
		return view
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
}
