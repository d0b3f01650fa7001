package analytics

import (
	"sort"

	"WhaleScope/internal/domain/models"
	"WhaleScope/pkg/util"
)

// Decision band thresholds.
const (
	strongScore   = 0.75
	strongGap     = 0.20
	moderateScore = 0.60
	ambiguousGap  = 0.10

	// float comparison slack; 0.10 exactly must read as ambiguous
	// while 0.1001 must not
	gapEpsilon = 1e-9
)

// archetypeOrder fixes iteration order so identical inputs always
// produce byte-identical output.
var archetypeOrder = []string{
	models.EntityCEXHotWallet,
	models.EntityMEVBot,
	models.EntityFund,
	models.EntityWhale,
}

// Decide maps adjusted, gated scores to a final Classification. The
// policy fails closed: exact ties and narrow gaps resolve to Unknown,
// never to an arbitrary winner.
func Decide(scores map[string]float64, rules RuleResult, penalty float64) models.Classification {
	cls := models.NewClassification()
	cls.ContradictionPenalty = util.Round2(penalty)
	for _, k := range archetypeOrder {
		cls.AllScores[k] = util.Score(scores[k])
	}

	ranked := append([]string(nil), archetypeOrder...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})
	top, runner := ranked[0], ranked[1]
	topScore := scores[top]
	gap := topScore - scores[runner]

	cls.EntityScore = util.Score(topScore)

	switch {
	case gap <= ambiguousGap+gapEpsilon:
		cls.SignalsUsed = []string{models.BandAmbiguous}
	case topScore >= strongScore && gap >= strongGap-gapEpsilon:
		cls.EntityType = top
		cls.SignalsUsed = append(append([]string{}, rules.Satisfied[top]...), models.BandStrong)
	case topScore >= moderateScore:
		cls.EntityType = top
		cls.SignalsUsed = append(append([]string{}, rules.Satisfied[top]...), models.BandModerate)
	default:
		cls.SignalsUsed = []string{models.BandWeak}
	}
	return cls
}
