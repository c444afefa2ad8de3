package logging

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kgeyst.com/describer/pkg/common"
	"kgeyst.com/describer/pkg/describer/domain"
)

type predictorDecorator struct {
	wrappedPredictor domain.Predictor
	logger           common.Logger
	now              func() time.Time
}

// NewPredictorDecorator logs every prediction request: its size, the outcome and how long it took.
// Each request gets an id so that the request and response lines can be matched in a shared log.
func NewPredictorDecorator(wrappedPredictor domain.Predictor, logger common.Logger) domain.Predictor {
	return &predictorDecorator{
		wrappedPredictor: wrappedPredictor,
		logger:           logger,
		now:              time.Now,
	}
}

func (p *predictorDecorator) Predict(ctx context.Context, image []byte) ([]domain.Prediction, error) {
	requestID := uuid.NewString()
	p.logger.Log(fmt.Sprintf("[%s] prediction request (%d bytes)", requestID, len(image)))
	t := p.now()
	predictions, err := p.wrappedPredictor.Predict(ctx, image)
	took := p.now().Sub(t).Milliseconds()
	if err != nil {
		p.logger.Log(fmt.Sprintf("[%s] prediction failed: %s (took %d ms)", requestID, err, took))
		return nil, err
	}
	p.logger.Log(fmt.Sprintf("[%s] %d predictions: %s (took %d ms)", requestID, len(predictions), formatPredictions(predictions), took))
	return predictions, nil
}

func formatPredictions(predictions []domain.Prediction) string {
	result := ""
	for index, prediction := range predictions {
		if index > 0 {
			result += ", "
		}
		result += fmt.Sprintf("%s=%.2f", prediction.TagName, prediction.Probability)
	}
	return result
}
