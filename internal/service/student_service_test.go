package service

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quizdeck/quizdeck-api/internal/dto"
	"github.com/quizdeck/quizdeck-api/internal/model"
	"github.com/quizdeck/quizdeck-api/internal/repository"
)

type fakeStudentRepo struct {
	students   []model.Student
	findAllErr error
	created    *model.Student
	createErr  error
}

func (f *fakeStudentRepo) FindAll(scope *repository.Scope) ([]model.Student, error) {
	return f.students, f.findAllErr
}

func (f *fakeStudentRepo) Create(scope *repository.Scope, student *model.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = uuid.New()
	student.CreatedAt = time.Now()
	f.created = student
	return nil
}

func strPtr(s string) *string { return &s }

func TestStudentCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		req         dto.StudentCreateRequest
		wantMessage string
	}{
		{"missing name", dto.StudentCreateRequest{Email: "a@b.c"}, "name is required"},
		{"blank name", dto.StudentCreateRequest{Name: " ", Email: "a@b.c"}, "name is required"},
		{"missing email", dto.StudentCreateRequest{Name: "Ana"}, "email is required"},
		{"blank email", dto.StudentCreateRequest{Name: "Ana", Email: "\t"}, "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeStudentRepo{}
			svc := NewStudentService(repo)

			_, err := svc.Create(testScope(), tt.req)

			assertAppErr(t, err, http.StatusBadRequest, tt.wantMessage)
			if repo.created != nil {
				t.Error("no row should be created for an invalid request")
			}
		})
	}
}

func TestStudentCreateNormalizesOptionals(t *testing.T) {
	repo := &fakeStudentRepo{}
	svc := NewStudentService(repo)
	scope := testScope()

	resp, err := svc.Create(scope, dto.StudentCreateRequest{
		Name:       "  Ana  ",
		Email:      " ana@school.example ",
		Number:     strPtr("  17 "),
		Class:      strPtr("   "),
		Div:        nil,
		RollNumber: strPtr(""),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.TeacherID != scope.TeacherID() {
		t.Errorf("teacher_id = %s, want %s", resp.TeacherID, scope.TeacherID())
	}
	if resp.Name != "Ana" || resp.Email != "ana@school.example" {
		t.Errorf("got %q/%q, want trimmed name and email", resp.Name, resp.Email)
	}
	if resp.Number == nil || *resp.Number != "17" {
		t.Errorf("number = %v, want trimmed \"17\"", resp.Number)
	}
	// Blank-after-trim optionals become null, not empty strings.
	if resp.Class != nil {
		t.Errorf("class = %q, want null", *resp.Class)
	}
	if resp.Div != nil || resp.RollNumber != nil {
		t.Error("div and roll_number should be null")
	}
}

func TestStudentListEmptyIsNotAnError(t *testing.T) {
	svc := NewStudentService(&fakeStudentRepo{})

	students, err := svc.List(testScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Errorf("got %v, want an empty sequence", students)
	}
}
