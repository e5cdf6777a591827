package services

import (
	"context"
	"errors"

	"github.com/rnp2860/boleh-makan-vo-sub000/models"
)

// fakeInference scripts the three inference calls for pipeline tests.
type fakeInference struct {
	validation  *TextValidation
	validateErr error

	identify    *models.InferenceResult
	identifyErr error

	generated   string
	generateErr error

	identifyCalls int
	generateCalls int
}

func (f *fakeInference) ValidateText(ctx context.Context, text string) (*TextValidation, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	if f.validation != nil {
		return f.validation, nil
	}
	return &TextValidation{IsFood: true, Name: text}, nil
}

func (f *fakeInference) Identify(ctx context.Context, input models.MealInput) (*models.InferenceResult, error) {
	f.identifyCalls++
	if f.identifyErr != nil {
		return nil, f.identifyErr
	}
	if f.identify != nil {
		return f.identify, nil
	}
	return nil, errors.New("no scripted identify result")
}

func (f *fakeInference) Generate(ctx context.Context, prompt string) (string, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return "", f.generateErr
	}
	return f.generated, nil
}

// fakeGeneric scripts the generic-catalog lookup.
type fakeGeneric struct {
	match *GenericMatch
	err   error
	calls int
}

func (f *fakeGeneric) Lookup(ctx context.Context, query string) (*GenericMatch, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.match, nil
}
