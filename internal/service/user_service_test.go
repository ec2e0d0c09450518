package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "hhcc/internal/errors"
	"hhcc/internal/model"
)

func TestUserService_UpdateProfile_TruthyMerge(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{
		ID:        userID,
		Username:  "old-name",
		FirstName: "Old",
		LastName:  "Name",
		Phone:     "555-0000",
		Address:   "1 Old Road",
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	mockRepo.On("Save", mock.Anything, stored).Return(nil)

	svc := NewUserService(mockRepo)
	updated, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{
		FirstName: "New",
		Phone:     "555-1111",
		// Username, LastName and Address intentionally empty.
	})

	assert.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "555-1111", updated.Phone)
	assert.Equal(t, "old-name", updated.Username)
	assert.Equal(t, "Name", updated.LastName)
	assert.Equal(t, "1 Old Road", updated.Address)
}

func TestUserService_UpdateProfile_UserNotFound(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)
	_, err := svc.UpdateProfile(context.Background(), userID, ProfileUpdate{FirstName: "X"})

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_AddFamilyMember(t *testing.T) {
	userID := uuid.New()
	user := &model.User{ID: userID}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
	mockRepo.On("AddFamilyMember", mock.Anything, mock.AnythingOfType("*model.FamilyMember")).Return(nil)

	svc := NewUserService(mockRepo)
	_, err := svc.AddFamilyMember(context.Background(), userID, "Grandma June", 78, model.MemberTypeElder)

	assert.NoError(t, err)
	mockRepo.AssertCalled(t, "AddFamilyMember", mock.Anything, mock.MatchedBy(func(m *model.FamilyMember) bool {
		return m.UserID == userID && m.Name == "Grandma June" && m.Age == 78 && m.Type == model.MemberTypeElder
	}))
}

func TestUserService_AddPet(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mockRepo.On("AddPet", mock.Anything, mock.AnythingOfType("*model.Pet")).Return(nil)

	svc := NewUserService(mockRepo)
	_, err := svc.AddPet(context.Background(), userID, "Biscuit", "dog")

	assert.NoError(t, err)
	mockRepo.AssertCalled(t, "AddPet", mock.Anything, mock.MatchedBy(func(p *model.Pet) bool {
		return p.UserID == userID && p.Name == "Biscuit" && p.Type == "dog"
	}))
}

func TestUserService_RemoveFamilyMember_NonExistentIsNoOp(t *testing.T) {
	userID := uuid.New()
	ghostID := uuid.New()
	user := &model.User{ID: userID, FamilyMembers: []model.FamilyMember{{ID: uuid.New(), Name: "Kid"}}}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(user, nil)
	// Repository delete of a missing row succeeds without touching anything.
	mockRepo.On("RemoveFamilyMember", mock.Anything, userID, ghostID).Return(nil)

	svc := NewUserService(mockRepo)
	result, err := svc.RemoveFamilyMember(context.Background(), userID, ghostID, true)

	assert.NoError(t, err)
	assert.Len(t, result.FamilyMembers, 1)
}

func TestUserService_RemoveFamilyMember_PetList(t *testing.T) {
	userID := uuid.New()
	petID := uuid.New()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID}, nil)
	mockRepo.On("RemovePet", mock.Anything, userID, petID).Return(nil)

	svc := NewUserService(mockRepo)
	_, err := svc.RemoveFamilyMember(context.Background(), userID, petID, false)

	assert.NoError(t, err)
	mockRepo.AssertCalled(t, "RemovePet", mock.Anything, userID, petID)
	mockRepo.AssertNotCalled(t, "RemoveFamilyMember", mock.Anything, mock.Anything, mock.Anything)
}
