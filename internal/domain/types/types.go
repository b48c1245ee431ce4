// Package types contains result shapes shared between the service and the
// HTTP layer.
package types

import "github.com/okian/quintet/internal/domain/catalog"

// Team is a curated selection: exactly five products from five distinct
// categories whose summed price fits the request budget. An empty Products
// slice means no feasible team existed.
type Team struct {
	Products  []catalog.Product `json:"products"`
	TotalCost int               `json:"total_cost"`
}

// Found reports whether the team is complete.
func (t Team) Found() bool {
	return len(t.Products) == catalog.TeamSize
}
