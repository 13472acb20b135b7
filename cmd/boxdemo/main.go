// SPDX-License-Identifier: Unlicense OR MIT

// Command boxdemo hosts a component tree in the terminal. Layouts are
// computed on worker goroutines and drawn by the main thread.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"stackbox.org/app"
	"stackbox.org/f32"
	"stackbox.org/internal/logging"
	"stackbox.org/text"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// frameMsg carries a rendered frame to the program.
type frameMsg struct {
	seq  uint64
	view string
}

// surface is the state of the main thread.
type surface struct {
	host   *app.Host
	root   *cell
	screen *screen
	body   *expandable
	list   *itemList
	nextID int

	width, height int
	seq           uint64
	send          func(tea.Msg)
}

type model struct {
	s *surface

	input  textinput.Model
	adding bool
	frame  string
	seq    uint64
	status string
}

func main() {
	configPath := flag.String("config", "boxdemo.toml", "Path to the configuration file")
	flag.Parse()

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if os.Getenv(logging.EnvLevel) == "" {
		os.Setenv(logging.EnvLevel, config.LogLevel)
	}

	m, err := initialModel(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	app.Call(func() {
		m.s.send = func(msg tea.Msg) { go p.Send(msg) }
	})
	_, err = p.Run()
	app.Call(func() { m.s.host.Close() })
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initialModel(config Config) (*model, error) {
	policy, err := config.Layout.policy()
	if err != nil {
		return nil, err
	}
	dir, err := config.Layout.direction()
	if err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "New item"
	input.CharLimit = 120

	m := &model{input: input, status: "Ready"}
	app.Call(func() {
		m.s = newSurface(config, policy, dir)
	})
	return m, nil
}

func newSurface(config Config, policy app.Policy, dir app.Direction) *surface {
	s := &surface{root: &cell{class: "root"}}
	var items []item
	for _, t := range config.Items {
		items = append(items, item{ID: s.nextID, Text: t})
		s.nextID++
	}
	s.body = newExpandable(config.Body)
	s.list = newItemList(items)
	s.screen = newScreen(config.Title, s.body, s.list)
	s.host = app.NewHost(
		app.WithFactory(cells),
		app.WithText(text.Cells{}),
		app.WithWorkers(app.NewWorkers(config.Layout.Workers)),
		app.WithPolicy(policy),
		app.WithDirection(dir),
		app.WithLogger(logging.New("boxdemo")),
		app.WithApplied(s.draw),
	)
	s.host.HostIn(s.root)
	s.host.SetComponent(s.screen)
	return s
}

// draw renders the widgets and sends the frame to the program.
func (s *surface) draw() {
	if s.send == nil {
		return
	}
	s.seq++
	s.send(frameMsg{seq: s.seq, view: render(s.root, s.width, s.height)})
}

func (s *surface) resize(width, height int) {
	s.width, s.height = width, height
	s.host.SetSize(f32.Pt(float32(width), float32(height)))
}

func (s *surface) add(t string) {
	r := s.list.Record()
	items := append(r.State[:len(r.State):len(r.State)], item{ID: s.nextID, Text: t})
	s.nextID++
	s.list.UpdateState(items)
}

// removeLast reports whether an item was removed.
func (s *surface) removeLast() bool {
	items := s.list.Record().State
	if len(items) == 0 {
		return false
	}
	s.list.UpdateState(items[:len(items)-1])
	return true
}

func (s *surface) toggle() {
	s.body.UpdateState(!s.body.Record().State)
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Keep a row for the status line.
		app.Call(func() { m.s.resize(msg.Width, max(0, msg.Height-1)) })
		return m, nil
	case frameMsg:
		if msg.seq > m.seq {
			m.seq, m.frame = msg.seq, msg.view
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if m.adding {
		switch key {
		case "esc":
			m.adding = false
			m.input.Blur()
			m.status = "Cancelled"
			return m, nil
		case "enter":
			t := m.input.Value()
			m.adding = false
			m.input.Blur()
			if t == "" {
				m.status = "Nothing added"
				return m, nil
			}
			app.Call(func() { m.s.add(t) })
			m.status = "Added " + t
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.adding = true
		m.input.SetValue("")
		m.status = ""
		return m, m.input.Focus()
	case "d":
		var removed bool
		app.Call(func() { removed = m.s.removeLast() })
		if removed {
			m.status = "Deleted"
		} else {
			m.status = "No items to delete"
		}
	case " ", "space":
		app.Call(m.s.toggle)
		m.status = "Toggled"
	}
	return m, nil
}

func (m *model) View() string {
	footer := statusStyle.Render(m.status)
	if m.adding {
		footer = m.input.View()
	}
	return m.frame + "\n" + footer
}
