package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ymxu/resumefill/internal/apps"
	"github.com/ymxu/resumefill/internal/repositories/applications"
)

// Buckets holds application records split by status, each in creation
// order.
type Buckets struct {
	Pending   []apps.Application `json:"pending"`
	Submitted []apps.Application `json:"submitted"`
}

// ApplicationService tracks job applications across the two status
// buckets.
type ApplicationService interface {
	List(ctx context.Context) (*Buckets, error)
	Add(ctx context.Context, in apps.Input) (*apps.Application, error)
	Update(ctx context.Context, id string, in apps.Input) (*apps.Application, error)
	Toggle(ctx context.Context, id string) (apps.Status, error)
	Delete(ctx context.Context, id string) error
}

type applicationService struct {
	repo applications.Repository
}

func NewApplicationService(repo applications.Repository) ApplicationService {
	return &applicationService{repo: repo}
}

func (s *applicationService) List(ctx context.Context) (*Buckets, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	b := &Buckets{}
	for _, a := range all {
		if a.Status == apps.StatusSubmitted {
			b.Submitted = append(b.Submitted, a)
		} else {
			b.Pending = append(b.Pending, a)
		}
	}
	return b, nil
}

func (s *applicationService) Add(ctx context.Context, in apps.Input) (*apps.Application, error) {
	in = withDefaults(in)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	a := &apps.Application{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Date:      in.Date,
		Link:      in.Link,
		Notes:     in.Notes,
		Status:    in.Status,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, fmt.Errorf("saving application: %w", err)
	}
	return a, nil
}

func (s *applicationService) Update(ctx context.Context, id string, in apps.Input) (*apps.Application, error) {
	in = withDefaults(in)
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Date = in.Date
	existing.Link = in.Link
	existing.Notes = in.Notes
	existing.Status = in.Status

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *applicationService) Toggle(ctx context.Context, id string) (apps.Status, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if existing.Status == apps.StatusPending {
		existing.Status = apps.StatusSubmitted
	} else {
		existing.Status = apps.StatusPending
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return "", err
	}
	return existing.Status, nil
}

func (s *applicationService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteByID(ctx, id)
}

func withDefaults(in apps.Input) apps.Input {
	in.Title = strings.TrimSpace(in.Title)
	in.Link = strings.TrimSpace(in.Link)
	in.Notes = strings.TrimSpace(in.Notes)
	if strings.TrimSpace(in.Date) == "" {
		in.Date = apps.Today()
	}
	if in.Status == "" {
		in.Status = apps.StatusPending
	}
	return in
}
