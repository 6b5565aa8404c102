package model

// Interval is the wire form of one scale degree. Numerator and
// denominator travel as decimal strings: they grow up to 3^52, well
// past what a JSON number can carry exactly.
type Interval struct {
	Numerator   string  `json:"numerator"`
	Denominator string  `json:"denominator"`
	Value       float64 `json:"value"`
	Cents       float64 `json:"cents"`
	Frequency   float64 `json:"frequency"`
}
