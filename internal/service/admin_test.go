package service

import (
	"context"
	"encoding/json"
	"testing"

	"equiprent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminService_UpdateUserRole(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		svc := NewAdminService(mockUserRepo)

		payload := json.RawMessage(`{"user_id":"42","role":"manager"}`)
		mockUserRepo.On("UpdateRole", ctx, "42", domain.RoleManager).Return(payload, nil).Once()

		got, err := svc.UpdateUserRole(ctx, "42", domain.RoleManager)
		assert.NoError(t, err)
		assert.Equal(t, payload, got)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		svc := NewAdminService(mockUserRepo)

		_, err := svc.UpdateUserRole(ctx, "42", domain.Role("superadmin"))
		assert.ErrorIs(t, err, ErrUnknownRole)
		mockUserRepo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ProcedureError", func(t *testing.T) {
		mockUserRepo := new(MockUserRepo)
		svc := NewAdminService(mockUserRepo)

		mockUserRepo.On("UpdateRole", ctx, "42", domain.RoleClient).Return(nil, assert.AnError).Once()

		payload, err := svc.UpdateUserRole(ctx, "42", domain.RoleClient)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, payload)
		mockUserRepo.AssertExpectations(t)
	})
}

func TestAdminService_ListMembers(t *testing.T) {
	mockUserRepo := new(MockUserRepo)
	svc := NewAdminService(mockUserRepo)
	ctx := context.Background()

	users := []domain.User{
		{ID: 1, Name: "Boss", Role: domain.RoleManager},
		{ID: 2, Name: "Clerk", Role: domain.RoleClient},
	}
	mockUserRepo.On("List", ctx).Return(users, nil).Once()

	got, err := svc.ListMembers(ctx)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	mockUserRepo.AssertExpectations(t)
}
