package model

type TuningRequestBody struct {
	Fundamental float64 `json:"fundamental"`
	Octave      float64 `json:"octave"`
}

type TuningResponse struct {
	Fundamental float64    `json:"fundamental"`
	Intervals   []Interval `json:"intervals"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
