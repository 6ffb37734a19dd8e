package ledger

import (
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/model"
	"github.com/saadjs/lifelog/internal/storage"
)

type ProductivityState struct {
	Tasks  []model.Task  `json:"tasks" yaml:"tasks"`
	Habits []model.Habit `json:"habits" yaml:"habits"`
}

// DefaultProductivityState returns the sample tasks and habits a fresh
// install starts with. Due dates are relative to now.
func DefaultProductivityState(now time.Time) ProductivityState {
	return ProductivityState{
		Tasks: []model.Task{
			{ID: "1", Title: "Complete project proposal", DueDate: timestamp(now.Add(48 * time.Hour)), Priority: model.PriorityHigh, Category: "Work"},
			{ID: "2", Title: "Go grocery shopping", DueDate: timestamp(now.Add(24 * time.Hour)), Priority: model.PriorityMedium, Category: "Personal"},
			{ID: "3", Title: "Schedule dentist appointment", Priority: model.PriorityLow, Category: "Health"},
			{ID: "4", Title: "Read 30 pages", Priority: model.PriorityMedium, Category: "Personal"},
		},
		Habits: []model.Habit{
			{ID: "1", Name: "Drink 8 glasses of water", Frequency: model.FrequencyDaily, CompletedDates: []string{}},
			{ID: "2", Name: "Meditate for 10 minutes", Frequency: model.FrequencyDaily, CompletedDates: []string{}},
			{ID: "3", Name: "Exercise for 30 minutes", Frequency: model.FrequencyDaily, CompletedDates: []string{}},
			{ID: "4", Name: "Clean the house", Frequency: model.FrequencyWeekly, CompletedDates: []string{}},
		},
	}
}

type TaskInput struct {
	Title    string
	DueDate  string
	Priority model.Priority
	Category string
}

// TaskUpdate carries a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title     *string
	Completed *bool
	DueDate   *string
	Priority  *model.Priority
	Category  *string
}

type HabitInput struct {
	Name      string
	Frequency model.Frequency
}

// HabitUpdate has no streak or completed-date fields: those only change
// through ToggleHabitCompletion.
type HabitUpdate struct {
	Name      *string
	Frequency *model.Frequency
}

// Productivity owns tasks and habits.
type Productivity struct {
	persister
	mu    sync.Mutex
	clock clock.Clock
	ids   id.Generator
	state ProductivityState
}

func LoadProductivity(d Deps) *Productivity {
	d = d.withDefaults()
	p := &Productivity{
		persister: newPersister(d, storage.ProductivityKey),
		clock:     d.Clock,
		ids:       d.IDs,
		state:     DefaultProductivityState(d.Clock.Now()),
	}
	if load(&p.persister, &p.state) {
		p.normalize()
		p.log.Debug("loaded productivity ledger", zap.Int("tasks", len(p.state.Tasks)), zap.Int("habits", len(p.state.Habits)))
	}
	return p
}

// PersistErr returns the error of the last write, or nil if it succeeded.
func (p *Productivity) PersistErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr()
}

// normalize sorts and dedupes each habit's dates and derives its streak
// from them, whatever the loaded or imported document claimed.
func (p *Productivity) normalize() {
	p.state.Tasks = emptyIfNil(p.state.Tasks)
	p.state.Habits = slices.Clone(emptyIfNil(p.state.Habits))
	for i := range p.state.Habits {
		h := &p.state.Habits[i]
		dates := slices.Clone(emptyIfNil(h.CompletedDates))
		sort.Strings(dates)
		h.CompletedDates = slices.Compact(dates)
		h.Streak = Streak(h.CompletedDates)
	}
}

func (p *Productivity) Snapshot() ProductivityState {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := ProductivityState{
		Tasks:  slices.Clone(p.state.Tasks),
		Habits: make([]model.Habit, len(p.state.Habits)),
	}
	for i, h := range p.state.Habits {
		h.CompletedDates = slices.Clone(h.CompletedDates)
		out.Habits[i] = h
	}
	return out
}

func (p *Productivity) Replace(state ProductivityState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.normalize()
	save(&p.persister, &p.state)
}

func (p *Productivity) AddTask(in TaskInput) model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	task := model.Task{
		ID:       p.ids.New(),
		Title:    in.Title,
		DueDate:  in.DueDate,
		Priority: in.Priority,
		Category: in.Category,
	}
	p.state.Tasks = append(p.state.Tasks, task)
	save(&p.persister, &p.state)
	return task
}

func (p *Productivity) UpdateTask(taskID string, u TaskUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.state.Tasks {
		t := &p.state.Tasks[i]
		if t.ID != taskID {
			continue
		}
		if u.Title != nil {
			t.Title = *u.Title
		}
		if u.Completed != nil {
			t.Completed = *u.Completed
		}
		if u.DueDate != nil {
			t.DueDate = *u.DueDate
		}
		if u.Priority != nil {
			t.Priority = *u.Priority
		}
		if u.Category != nil {
			t.Category = *u.Category
		}
	}
	save(&p.persister, &p.state)
}

func (p *Productivity) RemoveTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Tasks = slices.DeleteFunc(p.state.Tasks, func(t model.Task) bool { return t.ID == taskID })
	save(&p.persister, &p.state)
}

func (p *Productivity) ToggleTaskCompletion(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.state.Tasks {
		if p.state.Tasks[i].ID == taskID {
			p.state.Tasks[i].Completed = !p.state.Tasks[i].Completed
		}
	}
	save(&p.persister, &p.state)
}

// ClearCompletedTasks drops every completed task. There is no undo.
func (p *Productivity) ClearCompletedTasks() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Tasks = slices.DeleteFunc(p.state.Tasks, func(t model.Task) bool { return t.Completed })
	save(&p.persister, &p.state)
}

func (p *Productivity) Tasks() []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.state.Tasks)
}

func (p *Productivity) Task(taskID string) (model.Task, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, t := range p.state.Tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return model.Task{}, false
}

// TodaysTasks returns tasks without a due date plus those due today.
func (p *Productivity) TodaysTasks() []model.Task {
	p.mu.Lock()
	defer p.mu.Unlock()
	today := clock.DateKey(p.clock.Now())
	out := make([]model.Task, 0)
	for _, t := range p.state.Tasks {
		if t.DueDate == "" || strings.HasPrefix(t.DueDate, today) {
			out = append(out, t)
		}
	}
	return out
}

func (p *Productivity) CompletedTasksCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, t := range p.state.Tasks {
		if t.Completed {
			count++
		}
	}
	return count
}

func (p *Productivity) OpenTasksCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	count := 0
	for _, t := range p.state.Tasks {
		if !t.Completed {
			count++
		}
	}
	return count
}

func (p *Productivity) AddHabit(in HabitInput) model.Habit {
	p.mu.Lock()
	defer p.mu.Unlock()
	habit := model.Habit{
		ID:             p.ids.New(),
		Name:           in.Name,
		Frequency:      in.Frequency,
		CompletedDates: []string{},
		Streak:         0,
	}
	p.state.Habits = append(p.state.Habits, habit)
	save(&p.persister, &p.state)
	return habit
}

func (p *Productivity) UpdateHabit(habitID string, u HabitUpdate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.state.Habits {
		h := &p.state.Habits[i]
		if h.ID != habitID {
			continue
		}
		if u.Name != nil {
			h.Name = *u.Name
		}
		if u.Frequency != nil {
			h.Frequency = *u.Frequency
		}
	}
	save(&p.persister, &p.state)
}

func (p *Productivity) RemoveHabit(habitID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Habits = slices.DeleteFunc(p.state.Habits, func(h model.Habit) bool { return h.ID == habitID })
	save(&p.persister, &p.state)
}

// ToggleHabitCompletion marks the habit done today, or undoes today's mark,
// then recomputes the streak from the full sorted date set. Other habits are
// left untouched. It returns the updated habit.
func (p *Productivity) ToggleHabitCompletion(habitID string) (model.Habit, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	today := clock.DateKey(p.clock.Now())
	for i := range p.state.Habits {
		h := &p.state.Habits[i]
		if h.ID != habitID {
			continue
		}
		dates := slices.Clone(emptyIfNil(h.CompletedDates))
		if slices.Contains(dates, today) {
			dates = slices.DeleteFunc(dates, func(d string) bool { return d == today })
		} else {
			dates = append(dates, today)
		}
		sort.Strings(dates)
		h.CompletedDates = dates
		h.Streak = Streak(dates)
		save(&p.persister, &p.state)
		p.log.Debug("toggled habit", zap.String("habit", habitID), zap.Int("streak", h.Streak))
		out := *h
		out.CompletedDates = slices.Clone(dates)
		return out, true
	}
	return model.Habit{}, false
}

func (p *Productivity) Habits() []model.Habit {
	return p.Snapshot().Habits
}

func (p *Productivity) Habit(habitID string) (model.Habit, bool) {
	for _, h := range p.Habits() {
		if h.ID == habitID {
			return h, true
		}
	}
	return model.Habit{}, false
}

// CompletedHabitsCount counts habits marked done today.
func (p *Productivity) CompletedHabitsCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	today := clock.DateKey(p.clock.Now())
	count := 0
	for _, h := range p.state.Habits {
		if slices.Contains(h.CompletedDates, today) {
			count++
		}
	}
	return count
}
