// Package app wires the configuration, storage, search, and LLM
// provider together and runs the Bubble Tea program.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/domain"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/profile"
	"github.com/abhisek/pathwise/internal/router"
	"github.com/abhisek/pathwise/internal/screen"
	"github.com/abhisek/pathwise/internal/screens/chat"
	"github.com/abhisek/pathwise/internal/screens/setup"
	"github.com/abhisek/pathwise/internal/search"
	"github.com/abhisek/pathwise/internal/session"
	"github.com/abhisek/pathwise/internal/trace"
	"github.com/abhisek/pathwise/internal/ui/layout"
)

// Options carries everything the TUI needs from the command layer.
type Options struct {
	Config    config.Config
	LLMConfig llm.Config
}

// appModel is the root Bubble Tea model.
type appModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel builds the dependency graph and the initial screen.
func newAppModel(opts Options) (*appModel, error) {
	store, err := NewStore(opts.Config)
	if err != nil {
		return nil, err
	}

	recorder := trace.NewRecorder(0)

	provider, err := llm.NewProvider(context.Background(), opts.LLMConfig, recorder)
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	deps := session.Deps{
		Provider: provider,
		Profiles: store,
		Searcher: NewSearcher(opts.Config),
		Recorder: recorder,
		UserID:   opts.Config.DefaultUser,
	}

	m := &appModel{}
	start := func(skill string, level domain.Level) (screen.Screen, error) {
		sess, err := session.New(deps, skill, level)
		if err != nil {
			return nil, err
		}
		m.session = sess
		return chat.New(sess), nil
	}

	m.router = router.New(setup.New(start))
	return m, nil
}

// NewStore builds the profile store selected by the configuration.
func NewStore(cfg config.Config) (profile.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		return profile.OpenSQLiteStore(cfg.DBPath())
	default:
		return profile.NewFileStore(cfg.ProfilesDir())
	}
}

// NewSearcher builds the resource searcher: Tavily when a key is
// configured, curated static resources otherwise.
func NewSearcher(cfg config.Config) search.Searcher {
	static := search.NewStaticSearcher()
	if cfg.Search.TavilyAPIKey == "" {
		return static
	}
	return search.WithFallback(search.NewTavilySearcher(cfg.Search.TavilyAPIKey), static)
}

func (m *appModel) Init() tea.Cmd {
	return nil
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *appModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sessionInfo := ""
	if m.session != nil {
		sessionInfo = m.session.Header()
	}
	header := layout.RenderHeader(title, sessionInfo, m.width)

	hints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints = append(provider.KeyHints(), hints...)
	}
	footer := layout.RenderFooter(hints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
