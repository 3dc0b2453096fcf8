// Package ui renders the candidate search as a Bubble Tea program.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/naka-gawa/candidate-search/internal/domain"
	"github.com/naka-gawa/candidate-search/internal/usecase"
)

// Model represents the UI state. Traversal state lives in the session;
// loads and detail lookups run as commands and come back as messages.
type Model struct {
	// ctx bounds the load and lookup commands. Bubble Tea hands Update no
	// context, so the one the program runs under is kept here.
	ctx      context.Context
	session  *usecase.Session
	loader   *usecase.Loader
	resolver *usecase.Resolver

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  *Styles
	status  string
	failed  bool // status holds an error
}

// NewModel creates a new UI model
func NewModel(ctx context.Context, session *usecase.Session, loader *usecase.Loader, resolver *usecase.Resolver) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Model{
		ctx:      ctx,
		session:  session,
		loader:   loader,
		resolver: resolver,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		styles:   NewStyles(),
	}
}

// Init starts the one and only load of this session.
func (m *Model) Init() tea.Cmd {
	m.session.BeginLoad()
	return tea.Batch(m.spinner.Tick, m.load())
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case candidatesLoadedMsg:
		return m, m.resolve(m.session.Loaded(msg.candidates, msg.err))

	case detailResolvedMsg:
		return m, m.resolve(m.session.ApplyDetail(msg.req, msg.detail))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Accept):
			return m, m.accept()
		case key.Matches(msg, m.keys.Reject):
			return m, m.reject()
		}
	}
	return m, nil
}

func (m *Model) accept() tea.Cmd {
	current := m.session.Current()
	if current == nil {
		return nil
	}
	req, err := m.session.Accept(m.ctx)
	if err != nil {
		m.status = fmt.Sprintf("Could not save %s: %v", current.Login, err)
		m.failed = true
		return nil
	}
	m.status = fmt.Sprintf("Saved %s.", current.Login)
	m.failed = false
	return m.resolve(req)
}

func (m *Model) reject() tea.Cmd {
	if m.session.Current() == nil {
		return nil
	}
	m.status = ""
	return m.resolve(m.session.Reject())
}

func (m *Model) load() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		candidates, err := loader.Load(ctx)
		return candidatesLoadedMsg{candidates: candidates, err: err}
	}
}

func (m *Model) resolve(req *usecase.DetailRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	r := *req
	candidate := m.session.Candidates()[r.Index]
	ctx, resolver := m.ctx, m.resolver
	return func() tea.Msg {
		detail := resolver.Resolve(ctx, candidate)
		if ctx.Err() != nil {
			// The program is shutting down; a nil detail would skip the candidate.
			return nil
		}
		return detailResolvedMsg{req: r, detail: detail}
	}
}

// View renders the model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Candidate Search"))
	b.WriteString("\n")

	switch m.session.State() {
	case usecase.StateIdle, usecase.StateLoading:
		b.WriteString(m.styles.Loading.Render(m.spinner.View() + " Loading candidate..."))
	case usecase.StateError:
		b.WriteString(m.styles.Error.Render(m.session.ErrorMessage()))
	case usecase.StateShowing:
		if current := m.session.Current(); current != nil {
			b.WriteString(m.renderCard(*current))
		} else {
			b.WriteString("No candidates found.")
		}
	case usecase.StateEmpty:
		b.WriteString(usecase.EmptyMessage)
	}
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.Status
		if m.failed {
			style = m.styles.Error
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Dim.Render(fmt.Sprintf("Saved candidates: %d", len(m.session.Saved()))))
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderCard(c domain.Candidate) string {
	card := domain.NewCard(c)

	var lines []string
	name := card.Name
	if card.Summary {
		name = strings.TrimSpace(name + " " + m.styles.Dim.Render(m.spinner.View()+" fetching details"))
	}
	lines = append(lines, m.styles.Name.Render(name))
	lines = append(lines, m.field("Avatar", m.styles.Link.Render(card.AvatarURL)))
	lines = append(lines, m.field("Username", card.Login))
	lines = append(lines, m.field("Location", card.Location))
	if card.EmailLink != "" {
		lines = append(lines, m.field("Email", m.styles.Link.Render(card.EmailLink)))
	} else {
		lines = append(lines, m.field("Email", card.Email))
	}
	lines = append(lines, m.field("GitHub", m.styles.Link.Render(card.ProfileURL)))
	lines = append(lines, m.field("Company", card.Company))

	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

func (m *Model) field(label, value string) string {
	return m.styles.Label.Render(label+":") + " " + value
}
