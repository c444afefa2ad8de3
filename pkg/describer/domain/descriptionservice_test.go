package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageLoader struct {
	data []byte
	err  error
	path string
}

func (f *fakeImageLoader) LoadImageBytes(path string) ([]byte, error) {
	f.path = path
	return f.data, f.err
}

type fakePredictor struct {
	predictions []Prediction
	err         error
	image       []byte
	calls       int
}

func (f *fakePredictor) Predict(ctx context.Context, image []byte) ([]Prediction, error) {
	f.calls++
	f.image = image
	return f.predictions, f.err
}

func TestDescriptionService_DescribeImage(t *testing.T) {
	loader := &fakeImageLoader{data: []byte{0xff, 0xd8}}
	predictor := &fakePredictor{predictions: []Prediction{
		{TagName: "cat", Probability: 0.91},
		{TagName: "dog", Probability: 0.75},
	}}
	service := NewDescriptionService(loader, predictor)

	description, err := service.DescribeImage(context.Background(), "cat.jpg")
	require.NoError(t, err)
	assert.Equal(t, `a "cat" and a "dog"`, description)
	assert.Equal(t, "cat.jpg", loader.path)
	assert.Equal(t, []byte{0xff, 0xd8}, predictor.image)
}

func TestDescriptionService_LoaderErrorIsPropagated(t *testing.T) {
	loadErr := errors.Join(ErrFileAccess, errors.New("no such file"))
	predictor := &fakePredictor{}
	service := NewDescriptionService(&fakeImageLoader{err: loadErr}, predictor)

	_, err := service.DescribeImage(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, ErrFileAccess)
	assert.Equal(t, 0, predictor.calls)
}

func TestDescriptionService_PredictorErrorIsPropagated(t *testing.T) {
	service := NewDescriptionService(&fakeImageLoader{data: []byte("x")}, &fakePredictor{err: ErrResponseShape})

	description, err := service.DescribeImage(context.Background(), "x.jpg")
	assert.ErrorIs(t, err, ErrResponseShape)
	assert.Empty(t, description)
}
