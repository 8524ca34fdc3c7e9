package validation

import (
	"testing"

	"github.com/community-content-api/internal/models"
)

func newTestValidator() *Validator {
	v := NewValidator()
	v.SetSubjectCache([]string{"calculus", "operating systems"})
	return v
}

func TestValidateFields_Valid(t *testing.T) {
	v := newTestValidator()

	errs := v.ValidateFields(&models.SubmissionInput{
		SubjectName: "calculus",
		ExamType:    "final",
	})
	if len(errs) != 0 {
		t.Errorf("Expected no field errors, got %v", errs)
	}
}

func TestValidateFields_OneErrorPerField(t *testing.T) {
	v := newTestValidator()

	errs := v.ValidateFields(&models.SubmissionInput{
		SubjectName: "alchemy",
		ExamType:    "quiz",
	})
	if len(errs) != 2 {
		t.Fatalf("Expected 2 field errors, got %d: %v", len(errs), errs)
	}

	fields := map[string]int{}
	for _, e := range errs {
		fields[e.Field]++
	}
	if fields["subject_name"] != 1 || fields["exam_type"] != 1 {
		t.Errorf("Expected exactly one error per field, got %v", fields)
	}
}

func TestValidateFields_RequiredFields(t *testing.T) {
	v := newTestValidator()

	errs := v.ValidateFields(&models.SubmissionInput{})
	if len(errs) != 2 {
		t.Fatalf("Expected 2 field errors for empty input, got %d: %v", len(errs), errs)
	}
}

func TestValidateFields_ExamTypeSet(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		examType string
		valid    bool
	}{
		{"mid", true},
		{"final", true},
		{"Final", false},
		{"midterm", false},
	}

	for _, tt := range tests {
		errs := v.ValidateFields(&models.SubmissionInput{
			SubjectName: "calculus",
			ExamType:    tt.examType,
		})
		if tt.valid && len(errs) != 0 {
			t.Errorf("Exam type %q: expected valid, got %v", tt.examType, errs)
		}
		if !tt.valid && len(errs) != 1 {
			t.Errorf("Exam type %q: expected 1 error, got %v", tt.examType, errs)
		}
	}
}

func TestAddSubject(t *testing.T) {
	v := newTestValidator()

	input := &models.SubmissionInput{SubjectName: "linear algebra", ExamType: "mid"}
	if errs := v.ValidateFields(input); len(errs) != 1 {
		t.Fatalf("Expected unknown subject to fail, got %v", errs)
	}

	v.AddSubject("linear algebra")
	if errs := v.ValidateFields(input); len(errs) != 0 {
		t.Errorf("Expected subject to validate after AddSubject, got %v", errs)
	}
}
