package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-api/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	FindAll(scope *Scope) ([]model.Quiz, error)
	FindByID(scope *Scope, id uuid.UUID) (*model.Quiz, error)
	Create(scope *Scope, quiz *model.Quiz) error
	// Update applies only the given columns and returns the updated row, or
	// ErrNotVisible when nothing matched.
	Update(scope *Scope, id uuid.UUID, fields map[string]any) (*model.Quiz, error)
	Delete(scope *Scope, id uuid.UUID) error
}

type quizRepository struct{}

func NewQuizRepository() QuizRepository {
	return &quizRepository{}
}

func (r *quizRepository) FindAll(scope *Scope) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := scope.run(func(tx *gorm.DB) error {
		return tx.Order("created_at DESC").Find(&quizzes).Error
	})
	if err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) FindByID(scope *Scope, id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := scope.run(func(tx *gorm.DB) error {
		return tx.First(&quiz, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotVisible
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Create(scope *Scope, quiz *model.Quiz) error {
	return scope.run(func(tx *gorm.DB) error {
		return tx.Create(quiz).Error
	})
}

func (r *quizRepository) Update(scope *Scope, id uuid.UUID, fields map[string]any) (*model.Quiz, error) {
	var quiz model.Quiz
	err := scope.run(func(tx *gorm.DB) error {
		res := tx.Model(&model.Quiz{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotVisible
		}
		return tx.First(&quiz, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = ErrNotVisible
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) Delete(scope *Scope, id uuid.UUID) error {
	return scope.run(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Quiz{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotVisible
		}
		return nil
	})
}
