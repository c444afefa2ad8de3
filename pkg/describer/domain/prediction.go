package domain

import "context"

// Prediction is one tag returned by the prediction service together with its confidence.
type Prediction struct {
	TagName     string
	Probability float64
}

// Predictor sends raw image bytes to a prediction service and returns the predictions in the order
// the service reported them.
type Predictor interface {
	Predict(ctx context.Context, image []byte) ([]Prediction, error)
}
