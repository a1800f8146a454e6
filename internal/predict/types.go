package predict

// Request carries one prediction scenario. Categorical fields are
// canonicalized internally; numeric fields are taken as-is.
type Request struct {
	PlasticType   string  `json:"plastic_type" yaml:"plastic_type"`
	Microorganism string  `json:"microorganism" yaml:"microorganism"`
	Temperature   float64 `json:"temperature" yaml:"temperature"`
	Humidity      float64 `json:"humidity" yaml:"humidity"`
	PH            float64 `json:"ph" yaml:"ph"`
	PlasticForm   string  `json:"plastic_form" yaml:"plastic_form"`
}

// Conditions echoes the environmental inputs of a prediction.
type Conditions struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	PlasticForm string  `json:"plastic_form"`
}

// BaseRate is the unadjusted {time, degradation, confidence} triple before
// environmental correction factors are applied.
type BaseRate struct {
	TimeDays       int
	DegradationPct float64
	Confidence     float64
}

// Prediction is the assembled result. It is a pure function of the request,
// the static tables, and (optionally) one advisory response.
type Prediction struct {
	DegradationTimeDays  int        `json:"degradation_time_days"`
	WeightLossPercentage float64    `json:"weight_loss_percentage"`
	Confidence           float64    `json:"confidence"`
	Conditions           Conditions `json:"conditions"`
	Notes                string     `json:"notes"`
	Microorganism        string     `json:"microorganism"`
	PlasticType          string     `json:"plastic_type"`
}
