package ledger

import (
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/model"
	"github.com/saadjs/lifelog/internal/storage"
)

const DefaultWeeklyGoal = 3

type FitnessState struct {
	CompletedWorkouts []model.CompletedWorkout `json:"completedWorkouts" yaml:"completedWorkouts"`
	CustomExercises   []model.Exercise         `json:"customExercises" yaml:"customExercises"`
	FavoriteExercises []string                 `json:"favoriteExercises" yaml:"favoriteExercises"`
	WeeklyGoal        int                      `json:"weeklyGoal" yaml:"weeklyGoal"`
}

func DefaultFitnessState() FitnessState {
	return FitnessState{
		CompletedWorkouts: []model.CompletedWorkout{},
		CustomExercises:   []model.Exercise{},
		FavoriteExercises: []string{},
		WeeklyGoal:        DefaultWeeklyGoal,
	}
}

// Fitness owns completed workouts, custom exercises and favorites.
type Fitness struct {
	persister
	mu    sync.Mutex
	clock clock.Clock
	ids   id.Generator
	state FitnessState
}

func LoadFitness(d Deps) *Fitness {
	d = d.withDefaults()
	f := &Fitness{
		persister: newPersister(d, storage.FitnessKey),
		clock:     d.Clock,
		ids:       d.IDs,
		state:     DefaultFitnessState(),
	}
	if load(&f.persister, &f.state) {
		f.normalize()
		f.log.Debug("loaded fitness ledger", zap.Int("workouts", len(f.state.CompletedWorkouts)))
	}
	return f
}

// PersistErr returns the error of the last write, or nil if it succeeded.
func (f *Fitness) PersistErr() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr()
}

func (f *Fitness) normalize() {
	f.state.CompletedWorkouts = emptyIfNil(f.state.CompletedWorkouts)
	f.state.CustomExercises = emptyIfNil(f.state.CustomExercises)
	f.state.FavoriteExercises = emptyIfNil(f.state.FavoriteExercises)
}

func (f *Fitness) Snapshot() FitnessState {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.state
	out.CompletedWorkouts = slices.Clone(f.state.CompletedWorkouts)
	out.CustomExercises = slices.Clone(f.state.CustomExercises)
	out.FavoriteExercises = slices.Clone(f.state.FavoriteExercises)
	return out
}

func (f *Fitness) Replace(state FitnessState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
	f.normalize()
	save(&f.persister, &f.state)
}

func (f *Fitness) AddCompletedWorkout(w model.CompletedWorkout) model.CompletedWorkout {
	f.mu.Lock()
	defer f.mu.Unlock()
	if w.ID == "" {
		w.ID = f.ids.New()
	}
	if w.Date == "" {
		w.Date = timestamp(f.clock.Now())
	}
	f.state.CompletedWorkouts = append(f.state.CompletedWorkouts, w)
	save(&f.persister, &f.state)
	return w
}

// CompleteWorkout records plan as finished now, snapshotting its total
// duration and the calories burned by each exercise over its duration.
func (f *Fitness) CompleteWorkout(plan model.WorkoutPlan) model.CompletedWorkout {
	duration := 0
	calories := 0.0
	for _, item := range plan.Exercises {
		duration += item.Duration
		calories += item.Exercise.CaloriesBurnedPerMinute * float64(item.Duration)
	}
	return f.AddCompletedWorkout(model.CompletedWorkout{
		PlanID:         plan.ID,
		Duration:       duration,
		CaloriesBurned: calories,
	})
}

func (f *Fitness) AddCustomExercise(e model.Exercise) model.Exercise {
	f.mu.Lock()
	defer f.mu.Unlock()
	if e.ID == "" {
		e.ID = f.ids.New()
	}
	f.state.CustomExercises = append(f.state.CustomExercises, e)
	save(&f.persister, &f.state)
	return e
}

func (f *Fitness) RemoveCustomExercise(exerciseID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.CustomExercises = slices.DeleteFunc(f.state.CustomExercises, func(e model.Exercise) bool { return e.ID == exerciseID })
	save(&f.persister, &f.state)
}

// ToggleFavoriteExercise adds exerciseID to the favorites, or removes it when
// already present. It reports whether the exercise is a favorite afterwards.
func (f *Fitness) ToggleFavoriteExercise(exerciseID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	favorite := !slices.Contains(f.state.FavoriteExercises, exerciseID)
	if favorite {
		f.state.FavoriteExercises = append(f.state.FavoriteExercises, exerciseID)
	} else {
		f.state.FavoriteExercises = slices.DeleteFunc(f.state.FavoriteExercises, func(v string) bool { return v == exerciseID })
	}
	save(&f.persister, &f.state)
	return favorite
}

func (f *Fitness) IsFavorite(exerciseID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Contains(f.state.FavoriteExercises, exerciseID)
}

func (f *Fitness) SetWeeklyGoal(goal int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.WeeklyGoal = goal
	save(&f.persister, &f.state)
}

func (f *Fitness) WeeklyGoal() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.WeeklyGoal
}

func (f *Fitness) CompletedWorkouts() []model.CompletedWorkout {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.state.CompletedWorkouts)
}

// AllExercises returns the custom exercises.
func (f *Fitness) AllExercises() []model.Exercise {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.state.CustomExercises)
}

func (f *Fitness) Exercise(exerciseID string) (model.Exercise, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range f.state.CustomExercises {
		if e.ID == exerciseID {
			return e, true
		}
	}
	return model.Exercise{}, false
}

// WeeklyProgress counts workouts dated on or after the start of the current
// week (Sunday 00:00 local). Undated or unparsable records never count.
func (f *Fitness) WeeklyProgress() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	start := clock.StartOfWeek(f.clock.Now())
	count := 0
	for _, w := range f.state.CompletedWorkouts {
		at, ok := parseTimestamp(w.Date)
		if ok && !at.Before(start) {
			count++
		}
	}
	return count
}

// TodaysCaloriesBurned sums the stored calorie snapshots of today's workouts.
func (f *Fitness) TodaysCaloriesBurned() float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	today := clock.DateKey(f.clock.Now())
	total := 0.0
	for _, w := range f.state.CompletedWorkouts {
		if strings.HasPrefix(w.Date, today) {
			total += w.CaloriesBurned
		}
	}
	return total
}
