package planner

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrIncompleteProfile means the caller's dietary profile is missing
// the calorie target or health goal. Generation cannot proceed; the
// caller must complete the profile before retrying.
var ErrIncompleteProfile = errors.New("planner: profile missing calories goal or health goal")

// Profile is the dietary input to plan generation, owned by the caller.
type Profile struct {
	Allergies           []string
	HealthComplications []string
	HealthGoal          string // "lose" | "maintain" | "gain"
	CaloriesGoal        float64
}

// Slot names in assembly order. The used-name set is shared across all
// four, so earlier slots get first pick.
var Slots = []string{"breakfast", "lunch", "dinner", "snacks"}

var slotRatios = map[string]float64{
	"breakfast": 0.25,
	"lunch":     0.35,
	"dinner":    0.30,
	"snacks":    0.10,
}

// SlotBudgets splits a daily calorie goal across the four meal slots.
func SlotBudgets(caloriesGoal float64) map[string]float64 {
	budgets := make(map[string]float64, len(slotRatios))
	for slot, ratio := range slotRatios {
		budgets[slot] = caloriesGoal * ratio
	}
	return budgets
}

// goalSearchTerms drive the generic-source queries per health goal.
var goalSearchTerms = map[string][]string{
	"gain": {
		"scrambled eggs", "boiled egg", "chicken sandwich", "beef stir fry",
		"tofu curry", "lentil soup", "greek yogurt parfait", "chicken rice bowl",
	},
	"lose": {
		"vegetable soup", "grilled chicken salad", "steamed fish", "boiled eggs",
		"baked sweet potato", "fruit salad", "chicken lettuce wrap", "tofu stir fry",
	},
	"maintain": {
		"omelette", "chicken pasta", "quinoa salad", "grilled salmon",
		"banana pancake", "chicken burrito", "cooked spinach", "egg fried rice",
		"grilled vegetables", "miso soup", "protein smoothie", "tofu scramble",
	},
}

// SearchTermsForGoal returns the generic-source search terms for a
// health goal, defaulting to the maintain list.
func SearchTermsForGoal(healthGoal string) []string {
	if terms, ok := goalSearchTerms[healthGoal]; ok {
		return terms
	}
	return goalSearchTerms["maintain"]
}

// fallbackPoolMin is the usability threshold: if allergy filtering
// leaves fewer candidates than this, assembly works from the shuffled
// unfiltered pool instead. An imperfect plan beats no plan, but the
// fallback is flagged so callers can surface it.
const fallbackPoolMin = 10

// DailyMealPlan maps each slot to its selected foods. A slot may be
// empty when nothing fit its budget; that is a displayable state, not
// an error.
type DailyMealPlan struct {
	Breakfast []FoodCandidate `json:"breakfast"`
	Lunch     []FoodCandidate `json:"lunch"`
	Dinner    []FoodCandidate `json:"dinner"`
	Snacks    []FoodCandidate `json:"snacks"`
}

func (p *DailyMealPlan) slot(name string) *[]FoodCandidate {
	switch name {
	case "breakfast":
		return &p.Breakfast
	case "lunch":
		return &p.Lunch
	case "dinner":
		return &p.Dinner
	default:
		return &p.Snacks
	}
}

// Slot returns the foods selected for a named slot.
func (p *DailyMealPlan) Slot(name string) []FoodCandidate {
	return *p.slot(name)
}

// IsEmpty reports whether every slot came back with nothing. The
// condition is retryable (regenerate with a fresh seed); it is never
// raised as an error.
func IsEmpty(plan *DailyMealPlan) bool {
	return len(plan.Breakfast) == 0 && len(plan.Lunch) == 0 &&
		len(plan.Dinner) == 0 && len(plan.Snacks) == 0
}

// Result is one generated day.
type Result struct {
	Plan      DailyMealPlan
	CreatedAt string // RFC 3339
	Fallback  bool   // true when allergy filtering was bypassed
}

// Generate builds a daily meal plan for the profile. Both sources are
// queried concurrently; a failing source logs and contributes an empty
// list rather than aborting. Only an incomplete profile is a hard
// error. The result is returned to the caller, never persisted here.
func Generate(ctx context.Context, profile Profile, seed uint32, generic GenericSource, catalog CatalogSource) (*Result, error) {
	if profile.CaloriesGoal <= 0 || profile.HealthGoal == "" {
		return nil, ErrIncompleteProfile
	}

	pool := fetchCandidates(ctx, profile.HealthGoal, generic, catalog)

	filtered := FilterFoods(pool, profile.Allergies, profile.HealthComplications)
	candidates := Shuffle(filtered, seed)

	fallback := false
	if len(candidates) < fallbackPoolMin && len(pool) > len(candidates) {
		log.Printf("[planner] only %d of %d candidates survived filtering, falling back to unfiltered pool", len(candidates), len(pool))
		candidates = Shuffle(pool, seed)
		fallback = true
	}

	budgets := SlotBudgets(profile.CaloriesGoal)
	used := make(map[string]struct{})

	res := &Result{Fallback: fallback}
	for _, slot := range Slots {
		*res.Plan.slot(slot) = assembleSlot(candidates, budgets[slot], used)
	}
	res.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return res, nil
}

// fetchCandidates merges both food sources: one generic search per
// goal-derived term plus a full catalog scan, all in flight at once.
// Failures are logged and only cost their own slice, so the group
// itself never errors.
func fetchCandidates(ctx context.Context, healthGoal string, generic GenericSource, catalog CatalogSource) []FoodCandidate {
	terms := SearchTermsForGoal(healthGoal)
	results := make([][]FoodCandidate, len(terms)+1)

	var g errgroup.Group
	for i, term := range terms {
		g.Go(func() error {
			foods, err := generic.SearchFoods(ctx, term)
			if err != nil {
				log.Printf("[planner] generic source failed for %q: %v", term, err)
				return nil
			}
			results[i] = foods
			return nil
		})
	}
	g.Go(func() error {
		foods, err := catalog.AllFoods(ctx)
		if err != nil {
			log.Printf("[planner] catalog source failed: %v", err)
			return nil
		}
		results[len(terms)] = foods
		return nil
	})
	_ = g.Wait()

	var pool []FoodCandidate
	for _, r := range results {
		pool = append(pool, r...)
	}
	return pool
}

// assembleSlot greedily fills one slot: score every unused candidate
// against the slot's macro target, take the best fits that still hold
// under the calorie budget, and stop once the slot is at least 90%
// full. Selected names go into the shared used set so no food repeats
// within the day. An empty result is valid.
func assembleSlot(candidates []FoodCandidate, slotCalories float64, used map[string]struct{}) []FoodCandidate {
	target := MacroTargetFor(slotCalories)

	type scored struct {
		food  FoodCandidate
		score float64
	}
	pool := make([]scored, 0, len(candidates))
	for _, f := range candidates {
		if _, taken := used[strings.ToLower(f.Name)]; taken {
			continue
		}
		pool = append(pool, scored{food: f, score: ScoreFood(f, target)})
	}

	// Stable sort keeps the shuffled order as the tiebreak, so equal
	// scores still resolve deterministically for a given seed.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].score > pool[j].score
	})

	var selected []FoodCandidate
	var total float64
	for _, s := range pool {
		// Both sources can return the same dish, so re-check the used
		// set at accept time, not just when the pool was built.
		key := strings.ToLower(s.food.Name)
		if _, taken := used[key]; taken {
			continue
		}
		if total+s.food.Calories <= slotCalories {
			selected = append(selected, s.food)
			total += s.food.Calories
			used[key] = struct{}{}
		}
		if total >= slotCalories*0.9 {
			break
		}
	}
	return selected
}
