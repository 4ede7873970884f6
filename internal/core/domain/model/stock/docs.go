// Package stock provides the Stock aggregate: a farmer's listed, sellable
// quantity of a crop at a price and location. Listings are read by the order
// fulfillment workflow for capacity evaluation and by the KPI read side for
// per-crop price averages; they are never physically deleted.
package stock
