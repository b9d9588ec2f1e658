package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/ymxu/resumefill/internal/apps"
	"github.com/ymxu/resumefill/internal/common"
)

// memSettings is an in-memory settings.Repository for service tests.
type memSettings struct {
	data map[string][]byte
}

func newMemSettings() *memSettings {
	return &memSettings{data: map[string][]byte{}}
}

func (m *memSettings) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memSettings) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// memApplications is an in-memory applications.Repository for service
// tests.
type memApplications struct {
	data map[string]apps.Application
	seq  map[string]int
	next int
}

func newMemApplications() *memApplications {
	return &memApplications{data: map[string]apps.Application{}, seq: map[string]int{}}
}

func (m *memApplications) Insert(_ context.Context, a *apps.Application) error {
	m.data[a.ID] = *a
	m.seq[a.ID] = m.next
	m.next++
	return nil
}

func (m *memApplications) Update(_ context.Context, a *apps.Application) error {
	if _, ok := m.data[a.ID]; !ok {
		return fmt.Errorf("application %s: %w", a.ID, common.ErrNotFound)
	}
	m.data[a.ID] = *a
	return nil
}

func (m *memApplications) DeleteByID(_ context.Context, id string) error {
	delete(m.data, id)
	return nil
}

func (m *memApplications) GetByID(_ context.Context, id string) (*apps.Application, error) {
	a, ok := m.data[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, common.ErrNotFound)
	}
	return &a, nil
}

func (m *memApplications) GetAll(_ context.Context) ([]apps.Application, error) {
	result := make([]apps.Application, 0, len(m.data))
	for _, a := range m.data {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool {
		return m.seq[result[i].ID] < m.seq[result[j].ID]
	})
	return result, nil
}
