package planner

import "strings"

// FilterFoods drops candidates whose name or ingredient text contains
// any allergy term, case-insensitively. healthComplications is
// accepted for future exclusion rules but currently performs none;
// keep it a documented no-op until the rules are actually defined.
// Pure: the input slice is not modified.
func FilterFoods(foods []FoodCandidate, allergies, healthComplications []string) []FoodCandidate {
	_ = healthComplications // reserved

	if len(allergies) == 0 {
		out := make([]FoodCandidate, len(foods))
		copy(out, foods)
		return out
	}

	out := make([]FoodCandidate, 0, len(foods))
	for _, f := range foods {
		name := strings.ToLower(f.Name)
		ingredients := strings.ToLower(f.Ingredients)
		excluded := false
		for _, a := range allergies {
			term := strings.ToLower(a)
			if term == "" {
				continue
			}
			if strings.Contains(name, term) || strings.Contains(ingredients, term) {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, f)
		}
	}
	return out
}
