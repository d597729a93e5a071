package tables

// PriceThreshold is one half of a price comparison: an operator and a USD
// value.
type PriceThreshold struct {
	Op    string
	Value float64
}

// PriceSlang maps budget vocabulary to default USD thresholds. An explicit
// figure in the query ("under $3") always wins over these defaults.
var PriceSlang = map[string]PriceThreshold{
	"cheap":       {Op: "<", Value: 5},
	"budget":      {Op: "<", Value: 5},
	"affordable":  {Op: "<", Value: 5},
	"inexpensive": {Op: "<", Value: 5},
	"expensive":   {Op: ">", Value: 20},
	"pricey":      {Op: ">", Value: 20},
	"premium":     {Op: ">", Value: 20},
}
