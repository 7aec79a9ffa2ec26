package service_test

import (
	"testing"

	apperrors "design-canvas-backend/internal/errors"
	"design-canvas-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

// Validation runs before any repository access, so these tests construct
// services without a database.

func TestCreateProjectValidation(t *testing.T) {
	svc := service.NewProjectService(nil, validator.New())

	tests := []struct {
		name string
		req  *service.CreateProjectRequest
	}{
		{"empty name", &service.CreateProjectRequest{Name: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(tt.req)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestUpdateProjectValidation(t *testing.T) {
	svc := service.NewProjectService(nil, validator.New())

	empty := ""
	resp, err := svc.Update(1, &service.UpdateProjectRequest{Name: &empty})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateFrameValidation(t *testing.T) {
	svc := service.NewFrameService(nil, nil, validator.New())

	tests := []struct {
		name string
		req  *service.CreateFrameRequest
	}{
		{"empty name", &service.CreateFrameRequest{Name: "", ProjectID: 1}},
		{"missing project id", &service.CreateFrameRequest{Name: "floor-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(tt.req)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreateComponentValidation(t *testing.T) {
	svc := service.NewComponentService(nil, nil, validator.New())

	tests := []struct {
		name string
		req  *service.CreateComponentRequest
	}{
		{"empty name", &service.CreateComponentRequest{FrameID: 1, Name: "", Type: "circle"}},
		{"empty type", &service.CreateComponentRequest{FrameID: 1, Name: "pump"}},
		{"missing frame id", &service.CreateComponentRequest{Name: "pump", Type: "circle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Create(tt.req)
			assert.Nil(t, resp)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestUpdateComponentValidation(t *testing.T) {
	svc := service.NewComponentService(nil, nil, validator.New())

	empty := ""
	resp, err := svc.Update(1, &service.UpdateComponentRequest{Name: &empty})

	assert.Nil(t, resp)
	assert.True(t, apperrors.IsValidation(err))
}
