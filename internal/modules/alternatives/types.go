package alternatives

import "errors"

// The five situations alternatives are generated for. The order is the
// presentation order and also the order the oracle is prompted in.
const (
	SituationBeimChef        = "beim-chef"
	SituationSchwiegereltern = "schwiegereltern"
	SituationNachtsUmDrei    = "nachts-um-drei"
	SituationStammtisch      = "stammtisch"
	SituationAmtsdeutsch     = "amtsdeutsch"
)

// Situations lists every valid situation key. A generate call only
// succeeds when the oracle covered all of them.
var Situations = []string{
	SituationBeimChef,
	SituationSchwiegereltern,
	SituationNachtsUmDrei,
	SituationStammtisch,
	SituationAmtsdeutsch,
}

const maxPerSituation = 3

var errEmptyItem = errors.New("item must not be empty")

type generateDTO struct {
	Item string `json:"item" binding:"required"`
}

// View is the aggregated, authoritative set of stored alternatives for an
// item. Every situation key is always present, possibly with an empty list.
type View struct {
	Item    string              `json:"item"`
	Results map[string][]string `json:"results"`
}
