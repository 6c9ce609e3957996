package tui

import (
	"github.com/charmbracelet/bubbles/help"

	"github.com/kendallross/studypace/internal/models"
	"github.com/kendallross/studypace/internal/planner"
	"github.com/kendallross/studypace/internal/storage"
	"github.com/kendallross/studypace/internal/utils"
)

type sessionState int

const (
	stateList sessionState = iota
	statePlan
	stateConfirmRedistribute
)

type Model struct {
	store   storage.Provider
	planner *planner.Planner

	state     sessionState
	keys      KeyMap
	help      help.Model
	worklets  []models.Worklet
	cursor    int
	dayCursor int
	today     string
	status    string
	quitting  bool
	width     int
	height    int
}

func NewModel(store storage.Provider, p *planner.Planner) Model {
	m := Model{
		store:   store,
		planner: p,
		state:   stateList,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}

	if settings, err := store.GetSettings(); err == nil {
		if today, err := utils.GetTodayInTimezone(settings.Timezone); err == nil {
			m.today = today
		}
	}
	m.reload()
	return m
}

// reload refreshes the worklet list from storage, clamping cursors.
func (m *Model) reload() {
	worklets, err := m.store.GetAllWorklets()
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.worklets = worklets
	if m.cursor >= len(m.worklets) {
		m.cursor = len(m.worklets) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.clampDayCursor()
}

func (m *Model) clampDayCursor() {
	if w, ok := m.selected(); ok {
		if m.dayCursor >= len(w.DailyTasks) {
			m.dayCursor = len(w.DailyTasks) - 1
		}
	}
	if m.dayCursor < 0 {
		m.dayCursor = 0
	}
}

func (m *Model) selected() (models.Worklet, bool) {
	if m.cursor < 0 || m.cursor >= len(m.worklets) {
		return models.Worklet{}, false
	}
	return m.worklets[m.cursor], true
}
