package class

import (
	"context"
	"strings"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/class/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type ClassService interface {
	List(ctx context.Context, req dto.ListClassesRequest) ([]entity.Class, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateClassRequest) (entity.Class, error)
	Update(ctx context.Context, id string, req dto.UpdateClassRequest) (entity.Class, error)
	Delete(ctx context.Context, id string) error
}

type classService struct {
	core *collection.Service[entity.Class]
}

func NewClassService(core *collection.Service[entity.Class]) ClassService {
	return &classService{core: core}
}

var listSchema = listquery.Schema[entity.Class]{
	Match: func(c entity.Class, term string) bool {
		return listquery.ContainsFold(term, c.Name)
	},
	Sort: map[string]func(a, b entity.Class) bool{
		"name":         func(a, b entity.Class) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
		"max_students": func(a, b entity.Class) bool { return a.MaxStudents < b.MaxStudents },
	},
}

func (s *classService) List(ctx context.Context, req dto.ListClassesRequest) ([]entity.Class, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

func (s *classService) Create(ctx context.Context, req dto.CreateClassRequest) (entity.Class, error) {
	return s.core.Create(ctx, req)
}

func (s *classService) Update(ctx context.Context, id string, req dto.UpdateClassRequest) (entity.Class, error) {
	return s.core.Update(ctx, id, req)
}

func (s *classService) Delete(ctx context.Context, id string) error {
	return s.core.Delete(ctx, id)
}
