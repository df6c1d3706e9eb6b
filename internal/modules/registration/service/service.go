package registration

import (
	"context"
	"fmt"
	"strconv"

	"github.com/TheDemonTuan/client-score-management/internal/collection"
	"github.com/TheDemonTuan/client-score-management/internal/entity"
	"github.com/TheDemonTuan/client-score-management/internal/modules/registration/dto"
	"github.com/TheDemonTuan/client-score-management/internal/upstream"
	"github.com/TheDemonTuan/client-score-management/pkg/apperror"
	"github.com/TheDemonTuan/client-score-management/pkg/envelope"
	"github.com/TheDemonTuan/client-score-management/pkg/listquery"
)

type RegistrationService interface {
	List(ctx context.Context, req dto.ListRegistrationsRequest) ([]entity.Registration, *envelope.Meta, error)
	Create(ctx context.Context, req dto.CreateRegistrationRequest) (entity.Registration, error)
	Delete(ctx context.Context, id int) error
}

type registrationService struct {
	core *collection.Service[entity.Registration]
}

func NewRegistrationService(core *collection.Service[entity.Registration]) RegistrationService {
	return &registrationService{core: core}
}

var listSchema = listquery.Schema[entity.Registration]{
	Match: func(r entity.Registration, term string) bool {
		return listquery.ContainsFold(term, r.SubjectID, r.StudentID)
	},
	Sort: map[string]func(a, b entity.Registration) bool{
		"id": func(a, b entity.Registration) bool { return a.ID < b.ID },
	},
}

func (s *registrationService) List(ctx context.Context, req dto.ListRegistrationsRequest) ([]entity.Registration, *envelope.Meta, error) {
	items, err := s.core.List(ctx, upstream.ListOptions{Preload: req.Preload, Select: req.Select})
	if err != nil {
		return nil, nil, err
	}
	out, meta := listquery.Apply(items, listSchema, req.Options)
	return out, meta, nil
}

func (s *registrationService) Create(ctx context.Context, req dto.CreateRegistrationRequest) (entity.Registration, error) {
	if cached, ok := s.core.Cached(ctx); ok {
		for _, r := range cached {
			if r.SubjectID == req.SubjectID && r.StudentID == req.StudentID {
				return entity.Registration{}, fmt.Errorf("%w: student is already registered for this subject", apperror.ErrConflict)
			}
		}
	}
	return s.core.Create(ctx, req)
}

func (s *registrationService) Delete(ctx context.Context, id int) error {
	return s.core.Delete(ctx, strconv.Itoa(id))
}
