package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zenith-music/zenith/internal/models"
	"github.com/zenith-music/zenith/internal/repositories"
	"github.com/zenith-music/zenith/internal/services"
	"github.com/zenith-music/zenith/internal/survey"
	"github.com/zenith-music/zenith/internal/tasks"
)

// Page represents the current page in the TUI.
type Page int

const (
	HomePage Page = iota
	ProfilePage
	AboutPage
)

// Overlay enumerates the modal overlays. Exactly one value is active at a
// time; opening an overlay replaces whatever was open before.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlaySurvey
	OverlayLogin
	OverlaySignup
	OverlayPlaylist
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	backend services.Backend
	engine  *tasks.MoodEngine
	store   *repositories.SessionStore
	wizard  *survey.Wizard

	page    Page
	overlay Overlay
	session models.Session
	theme   string
	width   int
	height  int

	playlistList list.Model
	songList     list.Model
	trackList    list.Model

	profile models.Profile
	editing bool

	// Playlist overlay state. fetchedRef tracks which reference the current
	// track list belongs to, so reopening the same playlist skips the fetch.
	viewingName   string
	viewingMood   string
	viewingRef    string
	fetchedRef    string
	tracksLoading bool

	current    *tasks.GenerateResult
	submitting bool

	loginForm   *form
	signupForm  *form
	profileForm *form

	status string
	err    error
	help   help.Model
	keys   keyMap
}

// NewModel creates a new TUI model with the provided dependencies. The stored
// session and theme are loaded up front; load failures fall back to a logged
// out, light-themed state.
func NewModel(ctx context.Context, backend services.Backend, engine *tasks.MoodEngine, store *repositories.SessionStore) *Model {
	m := &Model{
		ctx:     ctx,
		backend: backend,
		engine:  engine,
		store:   store,
		wizard:  survey.NewWizard(),
		page:    HomePage,
		theme:   "light",
		help:    help.New(),
		keys:    newKeyMap(),
	}

	if session, err := store.Session(); err == nil {
		m.session = session
	}
	if theme, err := store.Theme(); err == nil {
		m.theme = theme
	}

	m.playlistList = newListModel("Your Playlists")
	m.songList = newListModel("Song Catalog")
	m.trackList = newListModel("Tracks")

	return m
}

func newListModel(title string) list.Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	return l
}

// Init fetches the song catalog, and when a session is stored, the user's
// saved playlists and profile.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchSongs()}
	if m.session.Valid() {
		cmds = append(cmds, m.fetchPlaylists(), m.loadProfile())
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.playlistList.SetSize(msg.Width-4, msg.Height-10)
		m.songList.SetSize(msg.Width-4, msg.Height-10)
		m.trackList.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case loginDoneMsg:
		return m.handleLoginDone(msg)

	case signupDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Sign up failed: %v", msg.err)
			return m, nil
		}
		m.status = "Account created, log in to continue"
		m.loginForm = newLoginForm()
		m.overlay = OverlayLogin
		return m, nil

	case generateDoneMsg:
		return m.handleGenerateDone(msg)

	case tracksFetchedMsg:
		return m.handleTracksFetched(msg)

	case playlistsFetchedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load playlists: %v", msg.err)
			return m, nil
		}
		items := make([]list.Item, len(msg.playlists))
		for i, pl := range msg.playlists {
			items[i] = playlistItem{playlist: pl}
		}
		return m, m.playlistList.SetItems(items)

	case songsFetchedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load songs: %v", msg.err)
			return m, nil
		}
		items := make([]list.Item, len(msg.songs))
		for i, song := range msg.songs {
			items[i] = songItem{song: song}
		}
		return m, m.songList.SetItems(items)

	case profileLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not load profile: %v", msg.err)
			return m, nil
		}
		m.profile = msg.profile
		return m, nil

	case playDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Playback failed: %v", msg.err)
		} else {
			m.status = "Playing on Spotify"
		}
		return m, nil

	case saveDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Save failed: %v", msg.err)
			return m, nil
		}
		m.status = "Playlist saved"
		return m, m.fetchPlaylists()
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current page and overlay.
func (m *Model) View() string {
	p := paletteFor(m.theme)

	var body string
	switch m.overlay {
	case OverlaySurvey:
		body = m.renderSurvey(p)
	case OverlayLogin:
		body = m.renderForm(p, m.loginForm)
	case OverlaySignup:
		body = m.renderForm(p, m.signupForm)
	case OverlayPlaylist:
		body = m.renderPlaylist(p)
	default:
		switch m.page {
		case HomePage:
			body = m.renderHome(p)
		case ProfilePage:
			body = m.renderProfile(p)
		case AboutPage:
			body = m.renderAbout(p)
		}
	}

	if m.status != "" {
		body = fmt.Sprintf("%s\n\n%s", body, p.warn.Render(m.status))
	}
	return body
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case OverlaySurvey:
		return m.handleSurveyKeys(msg)
	case OverlayLogin:
		return m.handleFormKeys(msg, m.loginForm, m.submitLogin)
	case OverlaySignup:
		return m.handleFormKeys(msg, m.signupForm, m.submitSignup)
	case OverlayPlaylist:
		return m.handlePlaylistKeys(msg)
	}

	if m.editing {
		return m.handleProfileEditKeys(msg)
	}
	return m.handlePageKeys(msg)
}

func (m *Model) handlePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.page):
		return m.switchPage(nextPage(m.page))

	case key.Matches(msg, m.keys.survey):
		if !m.session.Valid() {
			m.status = "Log in to take the survey"
			m.loginForm = newLoginForm()
			m.overlay = OverlayLogin
			return m, nil
		}
		m.wizard.Reset()
		m.submitting = false
		m.overlay = OverlaySurvey
		return m, nil

	case key.Matches(msg, m.keys.login):
		m.loginForm = newLoginForm()
		m.overlay = OverlayLogin
		return m, nil

	case key.Matches(msg, m.keys.signup):
		m.signupForm = newSignupForm()
		m.overlay = OverlaySignup
		return m, nil

	case key.Matches(msg, m.keys.logout):
		return m.logout()

	case key.Matches(msg, m.keys.refresh):
		cmds := []tea.Cmd{m.fetchSongs()}
		if m.session.Valid() {
			cmds = append(cmds, m.fetchPlaylists())
		}
		return m, tea.Batch(cmds...)

	case key.Matches(msg, m.keys.theme):
		return m.toggleTheme()

	case key.Matches(msg, m.keys.edit):
		if m.page == ProfilePage {
			m.profileForm = newProfileForm(m.profile)
			m.editing = true
			return m, nil
		}

	case key.Matches(msg, m.keys.enter):
		if m.page == HomePage || m.page == ProfilePage {
			if item, ok := m.playlistList.SelectedItem().(playlistItem); ok {
				pl := item.playlist
				return m, m.openPlaylist(pl.Name, pl.Mood, pl.SpotifyPlaylistID)
			}
			return m, nil
		}
	}

	return m.updateLists(msg)
}

// switchPage changes pages, refusing the profile page without a session.
func (m *Model) switchPage(target Page) (tea.Model, tea.Cmd) {
	if target == ProfilePage && !m.session.Valid() {
		m.status = "Log in to view your profile"
		m.loginForm = newLoginForm()
		m.overlay = OverlayLogin
		return m, nil
	}
	m.page = target
	if target == ProfilePage {
		// Entering the profile reloads both the fields and the playlist list.
		return m, tea.Batch(m.loadProfile(), m.fetchPlaylists())
	}
	return m, nil
}

func nextPage(p Page) Page {
	switch p {
	case HomePage:
		return ProfilePage
	case ProfilePage:
		return AboutPage
	default:
		return HomePage
	}
}

func (m *Model) logout() (tea.Model, tea.Cmd) {
	if err := m.store.ClearSession(); err != nil {
		m.status = fmt.Sprintf("Logout failed: %v", err)
		return m, nil
	}
	m.session = models.Session{}
	m.profile = models.Profile{}
	m.editing = false
	if m.page == ProfilePage {
		m.page = HomePage
	}
	m.status = "Logged out"
	return m, m.playlistList.SetItems([]list.Item{})
}

func (m *Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.theme == "light" {
		m.theme = "dark"
	} else {
		m.theme = "light"
	}
	if err := m.store.SetTheme(m.theme); err != nil {
		m.status = fmt.Sprintf("Could not store theme: %v", err)
	}
	return m, nil
}

func (m *Model) handleSurveyKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.wizard.Reset()
		m.submitting = false
		m.overlay = OverlayNone
		return m, nil

	case "1", "2", "3", "4", "5":
		if m.wizard.Complete() {
			return m, nil
		}
		rating := int(msg.String()[0] - '0')
		if err := m.wizard.Answer(rating); err != nil {
			m.status = fmt.Sprintf("Invalid answer: %v", err)
		}
		return m, nil

	case "enter":
		if !m.wizard.Complete() || m.submitting {
			return m, nil
		}
		m.submitting = true
		m.status = ""
		return m, m.submitSurvey(m.wizard.Answers())
	}
	return m, nil
}

func (m *Model) handleGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if msg.err != nil {
		m.status = fmt.Sprintf("Generation failed: %v", msg.err)
		return m, nil
	}
	m.current = msg.result
	m.wizard.Reset()
	m.status = fmt.Sprintf("Generated %s (%s mood)", msg.result.PlaylistName, msg.result.Mood)
	return m, m.openPlaylist(msg.result.PlaylistName, msg.result.Mood, msg.result.SpotifyID)
}

// openPlaylist opens the playlist overlay. Tracks are fetched only when the
// reference differs from the one already loaded.
func (m *Model) openPlaylist(name, mood, reference string) tea.Cmd {
	m.overlay = OverlayPlaylist
	m.viewingName = name
	m.viewingMood = mood
	m.viewingRef = reference

	if reference == m.fetchedRef {
		return nil
	}
	m.tracksLoading = true
	return tea.Batch(m.trackList.SetItems([]list.Item{}), m.fetchTracks(reference))
}

func (m *Model) handleTracksFetched(msg tracksFetchedMsg) (tea.Model, tea.Cmd) {
	if msg.reference != m.viewingRef {
		return m, nil
	}
	m.tracksLoading = false
	if msg.err != nil {
		// Shown as an empty track list; reopening the playlist retries.
		m.fetchedRef = ""
		return m, m.trackList.SetItems([]list.Item{})
	}
	m.fetchedRef = msg.reference
	items := make([]list.Item, len(msg.tracks))
	for i, track := range msg.tracks {
		items[i] = trackItem{track: track}
	}
	return m, m.trackList.SetItems(items)
}

func (m *Model) handlePlaylistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = OverlayNone
		return m, nil
	case "p":
		m.status = "Starting playback..."
		return m, m.playPlaylist(m.viewingRef)
	case "s":
		m.status = "Saving playlist..."
		return m, m.savePlaylist(m.viewingName, m.viewingMood, m.viewingRef)
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handleFormKeys(msg tea.KeyMsg, f *form, submit func(*form) tea.Cmd) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.overlay = OverlayNone
		return m, nil
	case "enter":
		m.status = ""
		return m, submit(f)
	}
	return m, f.Update(msg)
}

func (m *Model) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = fmt.Sprintf("Login failed: %v", msg.err)
		return m, nil
	}
	if err := m.store.SaveSession(msg.session); err != nil {
		m.status = fmt.Sprintf("Could not store session: %v", err)
		return m, nil
	}
	m.session = msg.session
	m.overlay = OverlayNone
	m.status = fmt.Sprintf("Logged in as %s", msg.session.Username)
	return m, tea.Batch(m.fetchPlaylists(), m.loadProfile())
}

func (m *Model) handleProfileEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		return m, nil
	case "enter":
		m.profile.Username = m.session.Username
		m.profile.Bio = m.profileForm.Value(0)
		m.profile.Genres = splitGenres(m.profileForm.Value(1))
		m.profile.Avatar = m.profileForm.Value(2)
		if err := m.store.SaveProfile(m.profile); err != nil {
			m.status = fmt.Sprintf("Could not save profile: %v", err)
			return m, nil
		}
		m.editing = false
		m.status = "Profile saved"
		// Saving reloads the page data wholesale.
		return m, tea.Batch(m.loadProfile(), m.fetchPlaylists())
	}
	return m, m.profileForm.Update(msg)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.overlay == OverlayPlaylist {
		m.trackList, cmd = m.trackList.Update(msg)
		return m, cmd
	}
	switch m.page {
	case HomePage, ProfilePage:
		m.playlistList, cmd = m.playlistList.Update(msg)
	case AboutPage:
		m.songList, cmd = m.songList.Update(msg)
	}
	return m, cmd
}

func (m *Model) fetchPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.engine.Playlists(m.ctx, m.session)
		return playlistsFetchedMsg{playlists: playlists, err: err}
	}
}

func (m *Model) fetchSongs() tea.Cmd {
	return func() tea.Msg {
		songs, err := m.backend.Songs(m.ctx)
		return songsFetchedMsg{songs: songs, err: err}
	}
}

func (m *Model) loadProfile() tea.Cmd {
	username := m.session.Username
	return func() tea.Msg {
		profile, err := m.store.Profile(username)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (m *Model) submitSurvey(answers []int) tea.Cmd {
	return func() tea.Msg {
		result, err := m.engine.Generate(m.ctx, m.session, answers, nil)
		return generateDoneMsg{result: result, err: err}
	}
}

func (m *Model) fetchTracks(reference string) tea.Cmd {
	return func() tea.Msg {
		tracks, err := m.engine.Tracks(m.ctx, m.session, reference, nil)
		return tracksFetchedMsg{reference: reference, tracks: tracks, err: err}
	}
}

func (m *Model) playPlaylist(reference string) tea.Cmd {
	return func() tea.Msg {
		return playDoneMsg{err: m.engine.Play(m.ctx, m.session, reference)}
	}
}

func (m *Model) savePlaylist(name, mood, reference string) tea.Cmd {
	return func() tea.Msg {
		return saveDoneMsg{err: m.engine.Save(m.ctx, m.session, name, mood, reference)}
	}
}

func (m *Model) renderHome(p *Palette) string {
	title := p.title.Render("Zenith")

	var who string
	if m.session.Valid() {
		who = p.ok.Render(fmt.Sprintf("Logged in as %s", m.session.Username))
	} else {
		who = p.warn.Render("Not logged in")
	}

	helpKeys := []key.Binding{m.keys.survey, m.keys.enter, m.keys.page, m.keys.quit}
	if !m.session.Valid() {
		helpKeys = []key.Binding{m.keys.login, m.keys.signup, m.keys.page, m.keys.quit}
	}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, who, m.playlistList.View(), helpView)
}

func (m *Model) renderProfile(p *Palette) string {
	title := p.title.Render(fmt.Sprintf("Profile: %s", m.session.Username))

	if m.editing {
		hint := p.help.Render("tab next field • enter save • esc cancel")
		return fmt.Sprintf("%s\n%s\n\n%s", title, m.profileForm.View(p), hint)
	}

	bio := m.profile.Bio
	if bio == "" {
		bio = "(no bio yet)"
	}
	genres := "(none)"
	if len(m.profile.Genres) > 0 {
		genres = fmt.Sprintf("%v", m.profile.Genres)
	}
	avatar := m.profile.Avatar
	if avatar == "" {
		avatar = "(none)"
	}

	info := fmt.Sprintf("Bio: %s\nFavorite genres: %s\nAvatar: %s", bio, genres, avatar)
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.edit, m.keys.enter, m.keys.logout, m.keys.page, m.keys.quit})

	return fmt.Sprintf("%s\n%s\n\n%s\n%s\n\n%s", title, info, m.moodHistory(p), m.playlistList.View(), helpView)
}

// moodHistory charts the moods of recent playlists, newest last.
func (m *Model) moodHistory(p *Palette) string {
	items := m.playlistList.Items()
	if len(items) == 0 {
		return ""
	}

	const bar = "████"
	lines := []string{p.title.Render("Mood history")}
	start := 0
	if len(items) > 8 {
		start = len(items) - 8
	}
	for _, it := range items[start:] {
		pl, ok := it.(playlistItem)
		if !ok {
			continue
		}
		style := p.help
		switch pl.playlist.Mood {
		case "happy":
			style = p.ok
		case "sad":
			style = p.err
		case "love", "energy":
			style = p.warn
		}
		lines = append(lines, fmt.Sprintf("  %s %s %s", pl.playlist.CreatedAt, style.Render(bar), pl.playlist.Mood))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderAbout(p *Palette) string {
	title := p.title.Render("About Zenith")
	blurb := "Zenith turns a short mood survey into a Spotify playlist.\nAnswer four questions, get a playlist matched to your mood."
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.up, m.keys.down, m.keys.page, m.keys.quit})

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, blurb, m.songList.View(), helpView)
}

func (m *Model) renderSurvey(p *Palette) string {
	title := p.title.Render("Mood Survey")

	if !m.wizard.Complete() {
		question := fmt.Sprintf("Question %d of %d\n\n%s", m.wizard.Index()+1, len(survey.Questions), m.wizard.Question())
		hint := p.help.Render("press 1 (not at all) to 5 (very much) • esc cancel")
		return fmt.Sprintf("%s\n%s\n\n%s", title, question, hint)
	}

	scores, err := m.wizard.Scores()
	if err != nil {
		return p.err.Render(fmt.Sprintf("Error: %v", err))
	}

	summary := fmt.Sprintf(
		"All questions answered.\n\nHappiness: %d\nSadness:   %d\nLove:      %d\nEnergy:    %d",
		scores.Happiness, scores.Sadness, scores.Love, scores.Energy,
	)

	action := p.help.Render("enter generate playlist • esc cancel")
	if m.submitting {
		action = p.warn.Render("Generating playlist...")
	}

	return fmt.Sprintf("%s\n%s\n\n%s", title, summary, action)
}

func (m *Model) renderForm(p *Palette, f *form) string {
	hint := p.help.Render("tab next field • enter submit • esc cancel")
	return fmt.Sprintf("%s\n\n%s", f.View(p), hint)
}

func (m *Model) renderPlaylist(p *Palette) string {
	title := p.title.Render(m.viewingName)
	mood := ""
	if m.viewingMood != "" {
		mood = p.ok.Render(fmt.Sprintf("Mood: %s", m.viewingMood))
	}

	var body string
	if m.tracksLoading {
		body = "Loading tracks..."
	} else if len(m.trackList.Items()) == 0 {
		body = "No tracks to show."
	} else {
		body = m.trackList.View()
	}

	helpView := m.help.ShortHelpView([]key.Binding{m.keys.play, m.keys.save, m.keys.back, m.keys.quit})
	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, mood, body, helpView)
}

func (m *Model) submitLogin(f *form) tea.Cmd {
	username, password := f.Value(0), f.Value(1)
	return func() tea.Msg {
		token, err := m.backend.Login(m.ctx, username, password)
		if err != nil {
			return loginDoneMsg{err: err}
		}
		return loginDoneMsg{session: models.Session{Token: token, Username: username}}
	}
}

func (m *Model) submitSignup(f *form) tea.Cmd {
	reg := services.Registration{
		Username: f.Value(0),
		Email:    f.Value(1),
		Password: f.Value(2),
	}
	return func() tea.Msg {
		return signupDoneMsg{err: m.backend.Register(m.ctx, reg)}
	}
}
