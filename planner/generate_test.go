package planner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"
)

type stubGeneric struct {
	foods []FoodCandidate
	err   error
	once  bool // return foods only for the first term, to keep pools small

	mu   sync.Mutex
	seen int
}

func (s *stubGeneric) SearchFoods(_ context.Context, _ string) ([]FoodCandidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen++
	if s.once && s.seen > 1 {
		return nil, nil
	}
	return s.foods, nil
}

type stubCatalog struct {
	foods []FoodCandidate
	err   error
}

func (s *stubCatalog) AllFoods(_ context.Context) ([]FoodCandidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.foods, nil
}

func mkFood(name string, calories, protein, carbs, fat float64) FoodCandidate {
	return FoodCandidate{Name: name, Calories: calories, Protein: protein, Carbs: carbs, Fat: fat}
}

// A varied pool big enough to survive filtering without fallback.
func testPool() []FoodCandidate {
	pool := []FoodCandidate{
		mkFood("Peanut Satay", 600, 30, 20, 40),
		mkFood("Grilled Chicken", 450, 40, 10, 15),
		mkFood("Nasi Lemak", 550, 15, 70, 22),
		mkFood("Vegetable Soup", 120, 5, 18, 3),
		mkFood("Fruit Salad", 150, 2, 35, 1),
		mkFood("Tofu Stir Fry", 300, 20, 25, 12),
		mkFood("Steamed Fish", 280, 35, 5, 10),
		mkFood("Egg Fried Rice", 480, 14, 60, 18),
		mkFood("Chicken Burrito", 520, 28, 55, 20),
		mkFood("Miso Soup", 80, 6, 8, 3),
		mkFood("Quinoa Salad", 350, 12, 45, 13),
		mkFood("Protein Smoothie", 220, 25, 20, 5),
		mkFood("Banana Pancake", 330, 8, 50, 11),
		mkFood("Grilled Vegetables", 140, 4, 20, 5),
	}
	return pool
}

func maintainProfile() Profile {
	return Profile{
		Allergies:    []string{"peanut"},
		HealthGoal:   "maintain",
		CaloriesGoal: 2000,
	}
}

func allPlanFoods(plan *DailyMealPlan) []FoodCandidate {
	var out []FoodCandidate
	for _, slot := range Slots {
		out = append(out, plan.Slot(slot)...)
	}
	return out
}

func TestSlotBudgetsSumToGoal(t *testing.T) {
	budgets := SlotBudgets(2000)
	want := map[string]float64{"breakfast": 500, "lunch": 700, "dinner": 600, "snacks": 200}
	var sum float64
	for slot, b := range budgets {
		if math.Abs(b-want[slot]) > 1e-9 {
			t.Errorf("%s budget = %v, want %v", slot, b, want[slot])
		}
		sum += b
	}
	if math.Abs(sum-2000) > 1e-9 {
		t.Errorf("budgets sum to %v, want 2000", sum)
	}
}

func TestGenerateIncompleteProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
	}{
		{"missing calories goal", Profile{HealthGoal: "maintain"}},
		{"missing health goal", Profile{CaloriesGoal: 2000}},
		{"negative calories goal", Profile{HealthGoal: "lose", CaloriesGoal: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(context.Background(), tt.profile, 1, &stubGeneric{}, &stubCatalog{})
			if !errors.Is(err, ErrIncompleteProfile) {
				t.Fatalf("err = %v, want ErrIncompleteProfile", err)
			}
		})
	}
}

// Both sources failing yields an empty plan within normal control
// flow, never an error.
func TestGenerateSourcesDown(t *testing.T) {
	res, err := Generate(context.Background(), maintainProfile(), 1,
		&stubGeneric{err: errors.New("usda timeout")},
		&stubCatalog{err: errors.New("db down")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !IsEmpty(&res.Plan) {
		t.Fatal("plan should be empty when both sources fail")
	}
	if _, perr := time.Parse(time.RFC3339, res.CreatedAt); perr != nil {
		t.Fatalf("createdAt %q is not RFC 3339: %v", res.CreatedAt, perr)
	}
}

func TestGenerateAllergyExclusion(t *testing.T) {
	res, err := Generate(context.Background(), maintainProfile(), SeedFromKey("2025-01-01"),
		&stubGeneric{foods: testPool(), once: true},
		&stubCatalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Fallback {
		t.Fatal("fallback should not trigger with a healthy pool")
	}
	for _, f := range allPlanFoods(&res.Plan) {
		if strings.Contains(strings.ToLower(f.Name), "peanut") {
			t.Errorf("allergen %q selected into plan", f.Name)
		}
	}
}

func TestGenerateNoDuplicateNames(t *testing.T) {
	res, err := Generate(context.Background(), maintainProfile(), 42,
		&stubGeneric{foods: testPool(), once: true},
		&stubCatalog{foods: testPool()}) // catalog duplicates the pool on purpose
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := make(map[string]bool)
	for _, f := range allPlanFoods(&res.Plan) {
		key := strings.ToLower(f.Name)
		if seen[key] {
			t.Errorf("food %q appears twice in one day", f.Name)
		}
		seen[key] = true
	}
}

func TestGenerateRespectsSlotBudgets(t *testing.T) {
	profile := maintainProfile()
	res, err := Generate(context.Background(), profile, 42,
		&stubGeneric{foods: testPool(), once: true},
		&stubCatalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	budgets := SlotBudgets(profile.CaloriesGoal)
	for _, slot := range Slots {
		var total float64
		for _, f := range res.Plan.Slot(slot) {
			total += f.Calories
		}
		if total > budgets[slot]+1e-9 {
			t.Errorf("%s total %v exceeds budget %v", slot, total, budgets[slot])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := func() *Result {
		res, err := Generate(context.Background(), maintainProfile(), 42,
			&stubGeneric{foods: testPool(), once: true},
			&stubCatalog{foods: testPool()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return res
	}
	a, b := gen(), gen()
	if !reflect.DeepEqual(a.Plan, b.Plan) {
		t.Fatal("same profile and seed should produce identical plans")
	}
}

// Filtering down to fewer than 10 candidates falls back to the
// shuffled unfiltered pool, flagged on the result.
func TestGenerateFallbackPool(t *testing.T) {
	pool := make([]FoodCandidate, 0, 30)
	for i := 0; i < 26; i++ {
		pool = append(pool, mkFood(fmt.Sprintf("Peanut Dish %d", i), 300, 15, 30, 10))
	}
	pool = append(pool,
		mkFood("Plain Rice", 200, 4, 44, 1),
		mkFood("Boiled Egg", 78, 6, 1, 5),
		mkFood("Steamed Fish", 280, 35, 5, 10),
		mkFood("Fruit Salad", 150, 2, 35, 1),
	)

	res, err := Generate(context.Background(), maintainProfile(), 7,
		&stubGeneric{foods: pool, once: true},
		&stubCatalog{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Fallback {
		t.Fatal("expected fallback to unfiltered pool")
	}
	if IsEmpty(&res.Plan) {
		t.Fatal("fallback pool should still produce a plan")
	}
}

func TestAssembleSlotSkipsUsedAndStopsEarly(t *testing.T) {
	target := 500.0
	candidates := []FoodCandidate{
		mkFood("Already Eaten", 450, 38, 50, 17),
		mkFood("Best Fit", 460, 37, 50, 17),
		mkFood("Small Filler", 30, 2, 4, 1),
	}
	used := map[string]struct{}{"already eaten": {}}

	got := assembleSlot(candidates, target, used)

	if len(got) != 1 || got[0].Name != "Best Fit" {
		t.Fatalf("selected %v, want only Best Fit (460 kcal passes the 90%% cutoff)", got)
	}
	if _, ok := used["best fit"]; !ok {
		t.Fatal("selected food should be recorded in the used set")
	}
}

func TestAssembleSlotEmptyWhenNothingFits(t *testing.T) {
	candidates := []FoodCandidate{
		mkFood("Huge Feast", 900, 40, 80, 35),
	}
	got := assembleSlot(candidates, 200, map[string]struct{}{})
	if len(got) != 0 {
		t.Fatalf("selected %v, want empty slot", got)
	}
}
