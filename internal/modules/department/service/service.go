package department

import (
	"context"
	"strconv"
	"strings"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/department/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type DepartmentService interface {
	List(ctx context.Context, req dto.ListDepartmentsRequest) ([]entity.Department, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateDepartmentRequest) (entity.Department, error)
	Update(ctx context.Context, id int, req dto.UpdateDepartmentRequest) (entity.Department, error)
	Delete(ctx context.Context, id int) error
}

type departmentService struct {
	core *collection.Service[entity.Department]
}

func NewDepartmentService(core *collection.Service[entity.Department]) DepartmentService {
	return &departmentService{core: core}
}

var listSchema = listquery.Schema[entity.Department]{
	Match: func(d entity.Department, term string) bool {
		return listquery.ContainsFold(term, d.Name)
	},
	Sort: map[string]func(a, b entity.Department) bool{
		"id":   func(a, b entity.Department) bool { return a.ID < b.ID },
		"name": func(a, b entity.Department) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	},
}

func (s *departmentService) List(ctx context.Context, req dto.ListDepartmentsRequest) ([]entity.Department, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

func (s *departmentService) Create(ctx context.Context, req dto.CreateDepartmentRequest) (entity.Department, error) {
	return s.core.Create(ctx, req)
}

func (s *departmentService) Update(ctx context.Context, id int, req dto.UpdateDepartmentRequest) (entity.Department, error) {
	return s.core.Update(ctx, strconv.Itoa(id), req)
}

func (s *departmentService) Delete(ctx context.Context, id int) error {
	return s.core.Delete(ctx, strconv.Itoa(id))
}
