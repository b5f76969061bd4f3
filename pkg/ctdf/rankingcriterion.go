package ctdf

type RankingCriterion string

const (
	RankingCriterionRecommended  RankingCriterion = "RECOMMENDED"
	RankingCriterionDurationAsc                   = "DURATION_ASC"
	RankingCriterionTransfersAsc                  = "TRANSFERS_ASC"
	RankingCriterionFareAsc                       = "FARE_ASC"
)

// ParseRankingCriterion maps a request parameter onto a criterion, falling
// back to RECOMMENDED for an empty value. The second return is false for an
// unrecognised value.
func ParseRankingCriterion(value string) (RankingCriterion, bool) {
	switch RankingCriterion(value) {
	case "":
		return RankingCriterionRecommended, true
	case RankingCriterionRecommended, RankingCriterionDurationAsc, RankingCriterionTransfersAsc, RankingCriterionFareAsc:
		return RankingCriterion(value), true
	default:
		return RankingCriterionRecommended, false
	}
}
