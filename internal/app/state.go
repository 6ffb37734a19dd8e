package app

import (
	"database/sql"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/saadjs/lifelog/internal/ai"
	"github.com/saadjs/lifelog/internal/clock"
	"github.com/saadjs/lifelog/internal/db"
	"github.com/saadjs/lifelog/internal/id"
	"github.com/saadjs/lifelog/internal/ledger"
	"github.com/saadjs/lifelog/internal/model"
	"github.com/saadjs/lifelog/internal/provider/openfoodfacts"
	"github.com/saadjs/lifelog/internal/storage"
)

// State is the application aggregate: the three ledgers loaded from one
// store, sharing a clock and a logger, plus the suggestion service.
type State struct {
	Store        storage.Store
	Clock        clock.Clock
	Log          *zap.Logger
	Nutrition    *ledger.Nutrition
	Fitness      *ledger.Fitness
	Productivity *ledger.Productivity
	Suggester    *ai.Suggester
	FoodDB       *openfoodfacts.Client
}

type Options struct {
	Store  storage.Store
	Clock  clock.Clock
	IDs    id.Generator
	Log    *zap.Logger
	AI     ai.Completer
	FoodDB *openfoodfacts.Client
}

func NewState(opts Options) *State {
	deps := ledger.Deps{Store: opts.Store, Clock: opts.Clock, IDs: opts.IDs, Log: opts.Log}
	if deps.Store == nil {
		deps.Store = storage.NewMemoryStore()
	}
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	completer := opts.AI
	if completer == nil {
		completer = &ai.Client{}
	}

	s := &State{
		Store:        deps.Store,
		Clock:        deps.Clock,
		Log:          deps.Log,
		Nutrition:    ledger.LoadNutrition(deps),
		Fitness:      ledger.LoadFitness(deps),
		Productivity: ledger.LoadProductivity(deps),
		FoodDB:       opts.FoodDB,
	}
	if s.FoodDB == nil {
		s.FoodDB = &openfoodfacts.Client{}
	}
	s.Suggester = &ai.Suggester{
		AI:        completer,
		Clock:     s.Clock,
		Nutrition: s.Nutrition,
		Tasks:     s.Productivity,
		Log:       s.Log.Named("ai"),
	}
	return s
}

// OpenDB opens and migrates the SQLite database at cfg.DBPath, creating its
// directory when needed.
func OpenDB(cfg Config) (*sql.DB, error) {
	if err := EnsureDBDir(cfg.DBPath); err != nil {
		return nil, err
	}
	return db.OpenAndMigrate(cfg.DBPath)
}

// NewStateFromDB loads the ledgers from sqldb and points the suggester and
// food lookups at cfg's endpoints.
func NewStateFromDB(sqldb *sql.DB, cfg Config, log *zap.Logger) *State {
	log.Debug("loading ledgers", zap.String("db", cfg.DBPath), zap.String("ai_endpoint", cfg.AIEndpoint))
	return NewState(Options{
		Store: storage.NewSQLiteStore(sqldb),
		IDs:   id.UUID{},
		Log:   log,
		AI: &ai.Client{
			BaseURL:    cfg.AIEndpoint,
			HTTPClient: &http.Client{Timeout: cfg.AITimeout},
		},
		FoodDB: &openfoodfacts.Client{BaseURL: cfg.FoodDBEndpoint},
	})
}

// OpenState is OpenDB, then stored config, then NewStateFromDB. The caller
// closes the returned *sql.DB.
func OpenState(cfg Config, log *zap.Logger) (*State, *sql.DB, error) {
	sqldb, err := OpenDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.ApplyStored(sqldb); err != nil {
		sqldb.Close()
		return nil, nil, err
	}
	return NewStateFromDB(sqldb, cfg, log), sqldb, nil
}

// DailyStats combines today's figures from all three ledgers.
func (s *State) DailyStats() model.DailyStats {
	return model.DailyStats{
		Date:             clock.DateKey(s.Clock.Now()),
		CaloriesConsumed: s.Nutrition.TodaysNutrition().Calories,
		CaloriesBurned:   s.Fitness.TodaysCaloriesBurned(),
		WaterIntake:      s.Nutrition.WaterIntake(),
		TasksCompleted:   s.Productivity.CompletedTasksCount(),
		HabitsCompleted:  s.Productivity.CompletedHabitsCount(),
	}
}

// PersistErr joins the last write failure of every ledger, if any.
func (s *State) PersistErr() error {
	return errors.Join(s.Nutrition.PersistErr(), s.Fitness.PersistErr(), s.Productivity.PersistErr())
}
