package dto

// Analytics holds aggregate metrics derived from the full law set. It is
// recomputed from scratch on every request.
type Analytics struct {
	TotalLaws                int                `json:"totalLaws"`
	AverageImpactBySector    map[string]float64 `json:"averageImpactBySector"`
	SP500AffectedPercentage  float64            `json:"sp500AffectedPercentage"`
	ConfidenceWeightedImpact float64            `json:"confidenceWeightedImpact"`
	TotalStocksImpacted      int                `json:"totalStocksImpacted"`
}
