// Package triggers evaluates stateless observation-note rules over
// batch ratios. A trigger states that a threshold condition held; it
// carries no directive and is fully independent of the numeric score.
package triggers

import (
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/specula/internal/models"
)

// Rule thresholds are fixed constants, not configuration.
const (
	alignmentZeroMax   = 50.0 // A: zero ratio must be below this
	alignmentSkewMin   = 30.0 // A: plus2 or minus2 ratio must exceed this
	noiseZeroMin       = 80.0 // B: zero ratio must exceed this
	noiseMinStreakDays = 2    // B: consecutive high-zero days required
	skewOneSidedMin    = 50.0 // C: plus2 or minus2 ratio must exceed this
	macroShiftMin      = 30.0 // D: macro ratio must exceed this
)

// Detector evaluates the four trigger rules. Stateless per call; the
// consecutive-day input comes from the history store.
type Detector struct {
	logger arbor.ILogger
}

// NewDetector creates a trigger detector.
func NewDetector(logger arbor.ILogger) *Detector {
	return &Detector{logger: logger}
}

// Detect evaluates all rules against the given ratios and returns the
// fired triggers. The rules are independent and non-exclusive; zero to
// four may fire.
func (d *Detector) Detect(ratios models.BatchRatios, consecutiveHighZeroDays int) []models.Trigger {
	var fired []models.Trigger

	// A: material alignment. The market has evaluable material and is
	// reacting to it in one direction or the other.
	if ratios.ZeroRatio < alignmentZeroMax &&
		(ratios.Plus2Ratio > alignmentSkewMin || ratios.Minus2Ratio > alignmentSkewMin) {
		fired = append(fired, models.Trigger{
			ID:      "A",
			Name:    "材料出揃いの兆候",
			Message: "市場が評価可能な材料に反応し始めている可能性があります。",
			Fired:   true,
		})
	}

	// B: noise dominant. Most items withheld evaluation and the state
	// has persisted. Both conditions are required; neither alone fires.
	if ratios.ZeroRatio > noiseZeroMin && consecutiveHighZeroDays >= noiseMinStreakDays {
		fired = append(fired, models.Trigger{
			ID:      "B",
			Name:    "ノイズ優勢状態",
			Message: "判断材料として使いにくいニュースが多い状態が続いています。",
			Fired:   true,
		})
	}

	// C: one-sided skew. Over half the batch landed on one side.
	if ratios.Plus2Ratio > skewOneSidedMin || ratios.Minus2Ratio > skewOneSidedMin {
		fired = append(fired, models.Trigger{
			ID:      "C",
			Name:    "評価の偏り",
			Message: "市場の受け止め方が一方向に偏っている可能性があります。",
			Fired:   true,
		})
	}

	// D: macro premise shift. Attention moved to rates and FX.
	if ratios.MacroRatio > macroShiftMin {
		fired = append(fired, models.Trigger{
			ID:      "D",
			Name:    "マクロ前提変化",
			Message: "株価以外の前提条件（金利・為替など）への注目が高まっています。",
			Fired:   true,
		})
	}

	if len(fired) > 0 {
		ids := make([]string, len(fired))
		for i, t := range fired {
			ids[i] = t.ID
		}
		d.logger.Info().Strs("triggers", ids).Msg("Observation triggers fired")
	}

	return fired
}
