package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hhcc/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Save(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CountAdmins(ctx context.Context) (int64, error)
	AddFamilyMember(ctx context.Context, member *model.FamilyMember) error
	RemoveFamilyMember(ctx context.Context, userID, memberID uuid.UUID) error
	AddPet(ctx context.Context, pet *model.Pet) error
	RemovePet(ctx context.Context, userID, petID uuid.UUID) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// Save persists scalar fields only; family members and pets have their own
// mutation paths and must not be rewritten by a profile update.
func (r *userRepository) Save(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit("FamilyMembers", "Pets").Save(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("FamilyMembers").Preload("Pets").
		Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Preload("FamilyMembers").Preload("Pets").
		Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Preload("FamilyMembers").Preload("Pets").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("role = ?", model.RoleAdmin).Count(&count).Error
	return count, err
}

func (r *userRepository) AddFamilyMember(ctx context.Context, member *model.FamilyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// RemoveFamilyMember deletes the member if it belongs to the user.
// Deleting a non-existent id is a no-op, not an error.
func (r *userRepository) RemoveFamilyMember(ctx context.Context, userID, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", memberID, userID).
		Delete(&model.FamilyMember{}).Error
}

func (r *userRepository) AddPet(ctx context.Context, pet *model.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *userRepository) RemovePet(ctx context.Context, userID, petID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", petID, userID).
		Delete(&model.Pet{}).Error
}

// WithTransaction executes a function within a database transaction.
func (r *userRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &userRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
