package types

import (
	"gopkg.in/guregu/null.v3"
)

type PurgeCacheRequest struct {
	Pairs []PurgeCachePair `json:"pairs" validate:"required,dive"`
}

type PurgeCachePair struct {
	Name string      `json:"name" validate:"required,caseinsensitiveoneof=listings#query listing#detail"`
	Key  null.String `json:"key"`
}
