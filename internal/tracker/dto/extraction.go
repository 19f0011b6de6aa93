package dto

// GenerationParameters are the sampling settings sent to the inference
// endpoint alongside a prompt.
type GenerationParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	DoSample     bool    `json:"do_sample"`
}

// InferenceRequest is the payload sent to the inference endpoint.
type InferenceRequest struct {
	Inputs     string               `json:"inputs"`
	Parameters GenerationParameters `json:"parameters"`
}

// ExtractedLawData is the best-effort structured record produced by the
// extraction orchestrator. It is always fully populated; fields may hold
// defaults when neither the model nor the fallback heuristics produced a
// usable value.
type ExtractedLawData struct {
	LawID        string `json:"lawId"`
	Jurisdiction string `json:"jurisdiction"`
	Status       string `json:"status"`
	Published    string `json:"published"` // YYYY-MM-DD
	Title        string `json:"title"`
	Sector       string `json:"sector"`
	Impact       int    `json:"impact"`
	Confidence   string `json:"confidence"`
	Summary      string `json:"summary"`
}
