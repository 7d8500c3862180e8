package repository

import (
	"github.com/quizdeck/quizdeck-api/internal/model"
	"gorm.io/gorm"
)

// StudentRepository exposes list and create only; the student API surface has
// no update or delete.
type StudentRepository interface {
	FindAll(scope *Scope) ([]model.Student, error)
	Create(scope *Scope, student *model.Student) error
}

type studentRepository struct{}

func NewStudentRepository() StudentRepository {
	return &studentRepository{}
}

func (r *studentRepository) FindAll(scope *Scope) ([]model.Student, error) {
	var students []model.Student
	err := scope.run(func(tx *gorm.DB) error {
		return tx.Order("created_at DESC").Find(&students).Error
	})
	if err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepository) Create(scope *Scope, student *model.Student) error {
	return scope.run(func(tx *gorm.DB) error {
		return tx.Create(student).Error
	})
}
