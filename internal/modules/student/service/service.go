package student

import (
	"context"
	"strings"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/student/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type StudentService interface {
	List(ctx context.Context, req dto.ListStudentsRequest) ([]entity.Student, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateStudentRequest) (entity.Student, error)
	Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (entity.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentService struct {
	core *collection.Service[entity.Student]
}

func NewStudentService(core *collection.Service[entity.Student]) StudentService {
	return &studentService{core: core}
}

var listSchema = listquery.Schema[entity.Student]{
	Match: func(s entity.Student, term string) bool {
		return listquery.ContainsFold(term, s.FirstName, s.LastName, s.Email, s.Phone)
	},
	Sort: map[string]func(a, b entity.Student) bool{
		"first_name":    func(a, b entity.Student) bool { return strings.ToLower(a.FirstName) < strings.ToLower(b.FirstName) },
		"last_name":     func(a, b entity.Student) bool { return strings.ToLower(a.LastName) < strings.ToLower(b.LastName) },
		"email":         func(a, b entity.Student) bool { return strings.ToLower(a.Email) < strings.ToLower(b.Email) },
		"academic_year": func(a, b entity.Student) bool { return a.AcademicYear < b.AcademicYear },
	},
}

func (s *studentService) List(ctx context.Context, req dto.ListStudentsRequest) ([]entity.Student, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

func (s *studentService) Create(ctx context.Context, req dto.CreateStudentRequest) (entity.Student, error) {
	return s.core.Create(ctx, req)
}

func (s *studentService) Update(ctx context.Context, id string, req dto.UpdateStudentRequest) (entity.Student, error) {
	return s.core.Update(ctx, id, req)
}

func (s *studentService) Delete(ctx context.Context, id string) error {
	return s.core.Delete(ctx, id)
}
