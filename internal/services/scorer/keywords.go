package scorer

// WeightedKeyword pairs a keyword with its directional weight. Positive
// weights run +1..+3, negative -1..-3, tiered weak / medium / strong.
type WeightedKeyword struct {
	Keyword string
	Weight  int
}

// ScoreKeywords holds the positive and negative keyword tables.
// Immutable once a Service is constructed; tests inject their own.
type ScoreKeywords struct {
	Positive []WeightedKeyword
	Negative []WeightedKeyword
}

// DefaultScoreKeywords returns the built-in scoring tables. Every
// matched keyword contributes its weight; there is deliberately no
// de-duplication across overlapping keywords and no early exit.
func DefaultScoreKeywords() ScoreKeywords {
	return ScoreKeywords{
		Positive: []WeightedKeyword{
			// strong (+3)
			{"過去最高", 3}, {"急騰", 3}, {"大幅上昇", 3}, {"予想上回る", 3},
			{"beat expectations", 3}, {"record high", 3}, {"surge", 3},
			{"利下げ", 2}, {"金融緩和", 2}, {"景気回復", 2},
			{"rate cut", 2}, {"easing", 2}, {"recovery", 2},
			// medium (+2)
			{"上昇", 2}, {"増益", 2}, {"好調", 2}, {"改善", 2}, {"成長", 2},
			{"買い越し", 2}, {"需要増", 2},
			{"rise", 2}, {"growth", 2}, {"gains", 2}, {"rally", 2},
			// weak (+1)
			{"堅調", 1}, {"安定", 1}, {"維持", 1}, {"底堅い", 1},
			{"stable", 1}, {"steady", 1},
		},
		Negative: []WeightedKeyword{
			// strong (-3)
			{"暴落", -3}, {"急落", -3}, {"危機", -3}, {"破綻", -3}, {"デフォルト", -3},
			{"crash", -3}, {"plunge", -3}, {"crisis", -3}, {"default", -3},
			{"利上げ", -2}, {"金融引き締め", -2}, {"リセッション", -2},
			{"rate hike", -2}, {"tightening", -2}, {"recession", -2},
			// medium (-2)
			{"下落", -2}, {"減益", -2}, {"悪化", -2}, {"低下", -2}, {"減少", -2},
			{"売り越し", -2}, {"需要減", -2}, {"インフレ懸念", -2},
			{"decline", -2}, {"drop", -2}, {"fall", -2}, {"loss", -2}, {"tariff", -2},
			// weak (-1)
			{"軟調", -1}, {"弱含み", -1}, {"警戒", -1}, {"懸念", -1},
			{"uncertainty", -1}, {"concern", -1}, {"cautious", -1},
		},
	}
}
