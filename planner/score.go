package planner

import "math"

// MacroTarget is the gram targets implied by a slot's calorie budget
// under a fixed 30/40/30 protein/carbs/fat calorie split. Protein and
// carbs carry 4 kcal per gram, fat 9.
type MacroTarget struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// MacroTargetFor derives the macro targets for one meal slot. The
// caller validates slotCalories > 0.
func MacroTargetFor(slotCalories float64) MacroTarget {
	return MacroTarget{
		Calories: slotCalories,
		Protein:  slotCalories * 0.30 / 4,
		Carbs:    slotCalories * 0.40 / 4,
		Fat:      slotCalories * 0.30 / 9,
	}
}

// ScoreFood rates how well a candidate fits a macro target. Higher is
// better and negative scores are fine; only relative order matters.
// Foods missing any of the four core numbers can't be ranked
// meaningfully and score 0, sinking below real data.
//
// Protein misses are penalized 4x and fat misses 7x: the selection
// should stay protein-adequate, and fat is the fastest way to blow a
// calorie budget at 9 kcal/g.
func ScoreFood(food FoodCandidate, target MacroTarget) float64 {
	if food.Calories == 0 || food.Protein == 0 || food.Carbs == 0 || food.Fat == 0 {
		return 0
	}
	return 1000 -
		(math.Abs(food.Calories-target.Calories) +
			math.Abs(food.Protein-target.Protein)*4 +
			math.Abs(food.Carbs-target.Carbs)*2 +
			math.Abs(food.Fat-target.Fat)*7)
}
