package lifelog

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
)

func mustRun(t *testing.T, env []string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, append(append([]string{}, env...), args...)...)
	if err != nil {
		t.Fatalf("%s failed: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func createdID(t *testing.T, out, prefix string) string {
	t.Helper()
	line := strings.TrimSpace(out)
	if !strings.HasPrefix(line, prefix) {
		t.Fatalf("expected output starting with %q, got %q", prefix, out)
	}
	return strings.Fields(strings.TrimPrefix(line, prefix))[0]
}

func TestDayInTheLifeFlow(t *testing.T) {
	env := testEnv(t, "")

	foodID := createdID(t, mustRun(t, env, "food", "add", "--name", "Oats", "--calories", "389", "--protein", "16.9", "--carbs", "66.3", "--fat", "6.9"), "Added food ")
	out := mustRun(t, env, "meal", "add", "--name", "Breakfast", "--foods", foodID+":100")
	if !strings.Contains(out, "(389 kcal)") {
		t.Fatalf("unexpected meal add output: %q", out)
	}
	mealID := createdID(t, out, "Logged meal ")

	if out := mustRun(t, env, "water", "add", "500"); !strings.Contains(out, "500ml") {
		t.Fatalf("unexpected water output: %q", out)
	}
	if out := mustRun(t, env, "water", "add", "--", "-800"); !strings.Contains(out, "Water intake: 0ml") {
		t.Fatalf("expected water to clamp at zero, got %q", out)
	}
	mustRun(t, env, "water", "set", "750")

	out = mustRun(t, env, "workout", "complete", "1")
	if !strings.Contains(out, "35 min, 302.5 kcal") || !strings.Contains(out, "This week: 1/3") {
		t.Fatalf("unexpected workout output: %q", out)
	}

	if out := mustRun(t, env, "task", "done", "1"); !strings.Contains(out, "Task 1 is completed") {
		t.Fatalf("unexpected task done output: %q", out)
	}
	if out := mustRun(t, env, "habit", "check", "1"); !strings.Contains(out, "done today, streak 1") {
		t.Fatalf("unexpected habit check output: %q", out)
	}

	out = mustRun(t, env, "today")
	for _, want := range []string{"Calories Consumed", "389", "303", "Goal: 2000", "1/3", "Water 750ml"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected dashboard to contain %q:\n%s", want, out)
		}
	}

	mustRun(t, env, "meal", "update", mealID, "--name", "Late breakfast")
	if out := mustRun(t, env, "meal", "list", "--today"); !strings.Contains(out, "Late breakfast") {
		t.Fatalf("expected renamed meal in list: %q", out)
	}
	mustRun(t, env, "food", "remove", foodID)
	if out := mustRun(t, env, "meal", "list"); !strings.Contains(out, "389") {
		t.Fatalf("meal should keep its food snapshot after food removal: %q", out)
	}
	mustRun(t, env, "meal", "remove", mealID)
	if _, err := runCLI(t, append(env, "meal", "remove", mealID)...); err == nil {
		t.Fatalf("expected removing a missing meal to fail")
	}
}

func TestTaskAndHabitCommands(t *testing.T) {
	env := testEnv(t, "")

	taskID := createdID(t, mustRun(t, env, "task", "add", "--title", "File taxes", "--priority", "high", "--due", "2030-04-15"), "Added task ")
	if _, err := runCLI(t, append(env, "task", "add", "--title", "x", "--priority", "urgent")...); err == nil {
		t.Fatalf("expected invalid priority to fail")
	}
	mustRun(t, env, "task", "update", taskID, "--category", "Finance", "--completed")
	out := mustRun(t, env, "task", "list")
	if !strings.Contains(out, taskID+"\t[x]\thigh\t2030-04-15\tFinance\tFile taxes") {
		t.Fatalf("unexpected task list: %q", out)
	}
	if out := mustRun(t, env, "task", "clear"); !strings.Contains(out, "Cleared 1 completed task(s)") {
		t.Fatalf("unexpected clear output: %q", out)
	}
	if _, err := runCLI(t, append(env, "task", "done", taskID)...); err == nil {
		t.Fatalf("expected cleared task to be gone")
	}

	habitID := createdID(t, mustRun(t, env, "habit", "add", "--name", "Journal", "--frequency", "weekly"), "Added habit ")
	mustRun(t, env, "habit", "check", habitID)
	if out := mustRun(t, env, "habit", "check", habitID); !strings.Contains(out, "not done today, streak 0") {
		t.Fatalf("expected second check to undo today's mark: %q", out)
	}
	mustRun(t, env, "habit", "update", habitID, "--name", "Journal nightly", "--frequency", "daily")
	if out := mustRun(t, env, "habit", "list"); !strings.Contains(out, "daily\t0\tJournal nightly") {
		t.Fatalf("unexpected habit list: %q", out)
	}
	mustRun(t, env, "habit", "remove", habitID)
}

func TestExerciseAndGoalCommands(t *testing.T) {
	env := testEnv(t, "")

	exID := createdID(t, mustRun(t, env, "exercise", "add", "--name", "Rowing", "--category", "Cardio", "--calories-per-minute", "9"), "Added exercise ")
	if out := mustRun(t, env, "exercise", "favorite", exID); !strings.Contains(out, "added to favorites") {
		t.Fatalf("unexpected favorite output: %q", out)
	}
	out := mustRun(t, env, "exercise", "list", "--favorites")
	if !strings.Contains(out, "Rowing") || strings.Contains(out, "Running") {
		t.Fatalf("unexpected favorites list: %q", out)
	}
	mustRun(t, env, "exercise", "remove", exID)
	if _, err := runCLI(t, append(env, "exercise", "remove", "1")...); err == nil {
		t.Fatalf("expected built-in exercise removal to fail")
	}

	mustRun(t, env, "goal", "weekly", "5")
	mustRun(t, env, "goal", "calories", "1800")
	mustRun(t, env, "workout", "log", "--duration", "20", "--calories", "150")
	if out := mustRun(t, env, "workout", "list"); !strings.Contains(out, "This week: 1/5") {
		t.Fatalf("unexpected workout list: %q", out)
	}
	if _, err := runCLI(t, append(env, "goal", "calories", "0")...); err == nil {
		t.Fatalf("expected zero calorie goal to fail")
	}
	if out := mustRun(t, env, "workout", "plans"); !strings.Contains(out, "Beginner Cardio") {
		t.Fatalf("unexpected plans output: %q", out)
	}
}

func TestExportImportBetweenDatabases(t *testing.T) {
	src := testEnv(t, "")
	dst := testEnv(t, "")
	bundle := filepath.Join(t.TempDir(), "backup.yaml")

	mustRun(t, src, "task", "add", "--title", "Portable task")
	mustRun(t, src, "water", "set", "1200")
	mustRun(t, src, "export", "--out", bundle)

	mustRun(t, dst, "import", "--in", bundle)
	if a, b := mustRun(t, src, "task", "list"), mustRun(t, dst, "task", "list"); a != b {
		t.Fatalf("task lists differ after import:\n%s\n%s", a, b)
	}
	if out := mustRun(t, dst, "water", "add", "0"); !strings.Contains(out, "1200ml") {
		t.Fatalf("expected imported water intake, got %q", out)
	}
}

func TestSuggestUsesConfiguredEndpoint(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"completion": "Take a 5 minute break."}`))
	}))
	defer ts.Close()

	env := testEnv(t, "ai_endpoint: "+ts.URL+"\n")
	if out := mustRun(t, env, "suggest", "tips"); strings.TrimSpace(out) != "Take a 5 minute break." {
		t.Fatalf("unexpected suggestion: %q", out)
	}

	mustRun(t, env, "config", "set", "ai_endpoint", ts.URL+"/missing")
	if out := mustRun(t, env, "config", "get", "ai_endpoint"); strings.TrimSpace(out) != ts.URL+"/missing" {
		t.Fatalf("unexpected config get: %q", out)
	}
}

func TestSuggestFailureIsGeneric(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	env := testEnv(t, "ai_endpoint: "+ts.URL+"\n")
	_, err := runCLI(t, append(env, "suggest", "habits", "sleep", "better")...)
	if err == nil || err.Error() != "Failed to get AI suggestion. Please try again." {
		t.Fatalf("expected generic suggestion error, got %v", err)
	}
}

func TestConfigSetValidatesValues(t *testing.T) {
	env := testEnv(t, "")
	if _, err := runCLI(t, append(env, "config", "set", "ai_timeout", "soon")...); err == nil {
		t.Fatalf("expected invalid timeout to fail")
	}
	if _, err := runCLI(t, append(env, "config", "set", "color", "blue")...); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
	mustRun(t, env, "config", "set", "log_level", "info")
	if out := mustRun(t, env, "config", "get"); !strings.Contains(out, "log_level\tinfo") {
		t.Fatalf("unexpected config listing: %q", out)
	}
}

func TestFoodLookupSavesCustomFood(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": 1, "product": {"product_name": "Protein Bar", "serving_quantity": 60,
  "nutriments": {"energy-kcal_serving": 210, "proteins_serving": 20, "carbohydrates_serving": 22, "fat_serving": 7}}}`))
	}))
	defer ts.Close()

	env := testEnv(t, "food_db_endpoint: "+ts.URL+"\n")
	out := mustRun(t, env, "food", "lookup", "0123456789", "--save")
	foodID := createdID(t, out[strings.Index(out, "Saved food "):], "Saved food ")

	if out := mustRun(t, env, "food", "list"); !strings.Contains(out, foodID+"\tProtein Bar\t210") {
		t.Fatalf("expected saved food in list: %q", out)
	}
	if out := mustRun(t, env, "meal", "add", "--foods", foodID+":30"); !strings.Contains(out, "(105 kcal)") {
		t.Fatalf("expected half-serving meal, got %q", out)
	}
}
