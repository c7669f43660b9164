package usecase

import (
	"math"

	"github.com/ligasmart/ligasmart/internal/domain/standing"
)

// Prediction is a three-way percentage split for one fixture. The three
// values are rounded independently and may sum to 99 or 101; that is the
// heuristic's documented behavior, deliberately left unnormalized.
type Prediction struct {
	Home int
	Draw int
	Away int
}

const (
	predictionSmoothing = 10.0
	predictionBase      = 5.0
	drawFloor           = 15.0
)

// Confidence labels, highest spread first.
const (
	ConfidenceVeryHigh = "Muy Alta"
	ConfidenceHigh     = "Alta"
	ConfidenceMedium   = "Media"
)

// PredictOutcome estimates a fixture from the two teams' current table
// rows. Strength is points plus half the goal difference; the smoothing
// constant keeps the split sane when both strengths are low or negative.
// Draw probability never drops below the floor; when clamped, the
// remaining mass is split by the raw home/away ratio.
func PredictOutcome(home, away standing.Standing) Prediction {
	homeStrength := home.Strength()
	awayStrength := away.Strength()

	total := homeStrength + awayStrength + predictionSmoothing
	homeProb := (homeStrength + predictionBase) / total * 100
	awayProb := (awayStrength + predictionBase) / total * 100
	drawProb := 100 - homeProb - awayProb

	if drawProb < drawFloor {
		drawProb = drawFloor
		ratio := homeProb / (homeProb + awayProb)
		homeProb = (100 - drawFloor) * ratio
		awayProb = (100 - drawFloor) * (1 - ratio)
	}

	return Prediction{
		Home: int(math.Round(homeProb)),
		Draw: int(math.Round(drawProb)),
		Away: int(math.Round(awayProb)),
	}
}

// ConfidenceLabel grades a prediction by its strongest outcome.
func ConfidenceLabel(p Prediction) string {
	top := p.Home
	if p.Away > top {
		top = p.Away
	}
	if p.Draw > top {
		top = p.Draw
	}
	switch {
	case top >= 55:
		return ConfidenceVeryHigh
	case top >= 45:
		return ConfidenceHigh
	default:
		return ConfidenceMedium
	}
}
