package ui

import (
	"strings"

	"github.com/abelbrown/newsdesk/internal/config"
	"github.com/abelbrown/newsdesk/internal/desk"
	"github.com/abelbrown/newsdesk/internal/news"
	"github.com/abelbrown/newsdesk/internal/otel"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppConfig holds the dependencies for the App.
// App does not hold the fetcher or the assistant; it receives results via
// messages produced by these command factories.
type AppConfig struct {
	Fetch     func(seq int, category news.Category) tea.Cmd
	Summarize func(seq int, category news.Category, articles []news.Article) tea.Cmd
	Ask       func(session int, question string, articles []news.Article) tea.Cmd
	OpenLink  func(url string) tea.Cmd

	Category    news.Category
	Credentials config.CredentialStatus
	ShowImages  bool

	Ring   *otel.RingBuffer // debug overlay source, may be nil
	Events otel.Emitter     // may be nil
}

// App is the root Bubble Tea model.
type App struct {
	cfg   AppConfig
	state desk.State
	first desk.Effect

	input    textinput.Model
	chatView viewport.Model
	spinner  spinner.Model
	spinning bool

	notice    string
	showDebug bool
	width     int
	height    int
	ready     bool
}

// NewApp creates an App showing cfg.Category.
func NewApp(cfg AppConfig) App {
	state, first := desk.Init(cfg.Category, cfg.Credentials)

	ti := textinput.New()
	ti.Placeholder = "Ask about the news..."
	ti.Prompt = "> "
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = SpinnerStyle

	return App{
		cfg:      cfg,
		state:    state,
		first:    first,
		input:    ti,
		chatView: viewport.New(60, 10),
		spinner:  sp,
	}
}

// Init starts the first headline fetch.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.perform(a.first), a.spinner.Tick)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.state.Chat.Open {
			return a.handleChatKey(msg)
		}
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resizeChat()
		return a, nil

	case HeadlinesLoaded:
		a.state = desk.HeadlinesLoaded(a.state, msg.Seq, msg.Articles, msg.Fallback, msg.Credentials)
		return a, nil

	case SummaryLoaded:
		a.state = desk.SummaryLoaded(a.state, msg.Seq, msg.Text)
		return a, nil

	case ChatAnswered:
		a.state = desk.ChatAnswered(a.state, msg.Session, msg.Text, msg.Err)
		a.refreshChat()
		return a, nil

	case LinkOpened:
		if msg.Err != nil {
			a.notice = "Could not open link: " + msg.Err.Error()
		} else {
			a.notice = "Opened in browser"
		}
		return a, nil

	case spinner.TickMsg:
		if !a.busy() {
			a.spinning = false
			return a, nil
		}
		a.spinning = true
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg processes keyboard input on the main screen.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.notice = ""

	if a.showDebug {
		switch msg.String() {
		case "?", "esc":
			a.showDebug = false
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		return a, nil
	}

	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "right", "l", "tab":
		return a.selectCategory(a.categoryAt(a.state.Category.Index() + 1))

	case "left", "h", "shift+tab":
		return a.selectCategory(a.categoryAt(a.state.Category.Index() - 1))

	case "1", "2", "3", "4", "5", "6", "7":
		idx := int(key[0] - '1')
		return a.selectCategory(a.categoryAt(idx))

	case "j", "down":
		a.state = desk.MoveCursor(a.state, 1)
		return a, nil

	case "k", "up":
		a.state = desk.MoveCursor(a.state, -1)
		return a, nil

	case "g", "home":
		a.state = desk.MoveCursor(a.state, -len(a.state.Articles))
		return a, nil

	case "G", "end":
		a.state = desk.MoveCursor(a.state, len(a.state.Articles))
		return a, nil

	case "r":
		var eff desk.Effect
		a.state, eff = desk.Reload(a.state)
		return a, a.startWork(eff)

	case "s":
		var eff desk.Effect
		a.state, eff = desk.RequestSummary(a.state)
		return a, a.startWork(eff)

	case "a":
		a.state = desk.OpenChat(a.state)
		a.emitChat("open")
		a.input.SetValue("")
		a.refreshChat()
		return a, a.input.Focus()

	case "o", "enter":
		article, ok := a.state.Selected()
		if !ok {
			return a, nil
		}
		if !article.HasLink() {
			a.notice = "No link for this article"
			return a, nil
		}
		if a.cfg.OpenLink != nil {
			return a, a.cfg.OpenLink(article.URL)
		}
		return a, nil

	case "?":
		a.showDebug = a.cfg.Ring != nil
		return a, nil
	}

	return a, nil
}

// handleChatKey processes keyboard input while the chat overlay is open.
func (a App) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		a.state = desk.CloseChat(a.state)
		a.emitChat("close")
		a.input.Blur()
		a.input.SetValue("")
		return a, nil

	case "enter":
		var eff desk.Effect
		a.state, eff = desk.SubmitChat(a.state, a.input.Value())
		if eff == nil {
			return a, nil
		}
		a.emitChat("ask")
		a.input.SetValue("")
		a.refreshChat()
		return a, a.startWork(eff)

	case "pgup", "pgdown":
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a App) selectCategory(c news.Category) (tea.Model, tea.Cmd) {
	var eff desk.Effect
	a.state, eff = desk.SelectCategory(a.state, c)
	otel.Emit(a.cfg.Events, otel.Event{
		Level:    otel.LevelInfo,
		Kind:     otel.KindCategory,
		Comp:     "ui",
		Category: string(c),
	})
	return a, a.startWork(eff)
}

func (a App) categoryAt(idx int) news.Category {
	cats := news.Categories()
	n := len(cats)
	return cats[((idx%n)+n)%n].ID
}

// startWork performs eff and makes sure the spinner is running.
func (a *App) startWork(eff desk.Effect) tea.Cmd {
	cmd := a.perform(eff)
	if cmd == nil {
		return nil
	}
	if a.spinning {
		return cmd
	}
	a.spinning = true
	return tea.Batch(cmd, a.spinner.Tick)
}

// perform turns an effect into the command that carries it out.
func (a App) perform(eff desk.Effect) tea.Cmd {
	switch e := eff.(type) {
	case desk.FetchEffect:
		if a.cfg.Fetch != nil {
			return a.cfg.Fetch(e.Seq, e.Category)
		}
	case desk.SummarizeEffect:
		if a.cfg.Summarize != nil {
			return a.cfg.Summarize(e.Seq, e.Category, e.Articles)
		}
	case desk.AskEffect:
		if a.cfg.Ask != nil {
			return a.cfg.Ask(e.Session, e.Question, e.Articles)
		}
	}
	return nil
}

func (a App) busy() bool {
	return a.state.Loading || a.state.SummaryLoading || a.state.Chat.Waiting
}

func (a App) emitChat(action string) {
	otel.Emit(a.cfg.Events, otel.Event{
		Level:    otel.LevelDebug,
		Kind:     otel.KindChat,
		Comp:     "ui",
		Category: string(a.state.Category),
		Msg:      action,
	})
}

func (a *App) resizeChat() {
	w, h := a.chatSize()
	a.chatView.Width = w
	a.chatView.Height = h
	a.input.Width = w - 4
	a.refreshChat()
}

// chatSize returns the inner size of the message area of the overlay.
func (a App) chatSize() (int, int) {
	w := a.width - 8
	if w > 90 {
		w = 90
	}
	if w < 20 {
		w = 20
	}
	// title, input, borders and spacing
	h := a.height*4/5 - 6
	if h < 3 {
		h = 3
	}
	return w, h
}

// refreshChat re-renders the chat history into the viewport.
func (a *App) refreshChat() {
	a.chatView.SetContent(renderMessages(a.state.Chat.Messages, a.chatView.Width))
	a.chatView.GotoBottom()
}

// State returns the current desk state (for testing).
func (a App) State() desk.State {
	return a.state
}

// Notice returns the transient status-bar message (for testing).
func (a App) Notice() string {
	return a.notice
}

// DebugVisible reports whether the debug overlay is shown (for testing).
func (a App) DebugVisible() bool {
	return a.showDebug
}

// InputValue returns the chat input text (for testing).
func (a App) InputValue() string {
	return strings.TrimSpace(a.input.Value())
}
