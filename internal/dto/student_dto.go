package dto

import (
	"time"

	"github.com/google/uuid"
)

type StudentCreateRequest struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Number     *string `json:"number"`
	Class      *string `json:"class"`
	Div        *string `json:"div"`
	RollNumber *string `json:"roll_number"`
}

type StudentResponse struct {
	ID         uuid.UUID `json:"id"`
	TeacherID  uuid.UUID `json:"teacher_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Number     *string   `json:"number"`
	Class      *string   `json:"class"`
	Div        *string   `json:"div"`
	RollNumber *string   `json:"roll_number"`
	CreatedAt  time.Time `json:"created_at"`
}
