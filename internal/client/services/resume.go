// Package services implements the assistant's use cases over the
// repositories: the resume document lifecycle, application tracking, and
// remembered settings.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ymxu/resumefill/internal/common"
	"github.com/ymxu/resumefill/internal/markup"
	"github.com/ymxu/resumefill/internal/repositories/settings"
	"github.com/ymxu/resumefill/internal/resume"
)

// ResumeService owns loading, importing and mutating the resume document.
// Every mutating operation writes the full document (and its rendered text
// export) back to the store before returning, so the store never lags the
// in-memory tree across operations.
type ResumeService interface {
	// Load returns the stored document, migrating the legacy flat
	// tag→content map on first use. A missing document yields an empty one.
	Load(ctx context.Context) (*resume.Document, error)

	// ImportText parses raw text into a fresh document and persists it
	// together with the originating file name. Text that yields no
	// sections is rejected and the stored document is left untouched.
	ImportText(ctx context.Context, fileName, text string) (*resume.Document, error)

	// ExportText renders the document back to the tagged text format.
	ExportText(doc *resume.Document) string

	// FileName returns the name of the last imported file, if any.
	FileName(ctx context.Context) (string, error)

	AddSection(ctx context.Context, doc *resume.Document, name, groupTitle string) error
	AddEntry(ctx context.Context, doc *resume.Document, sectionIdx, groupIdx int, e resume.Entry) error
	EditEntry(ctx context.Context, doc *resume.Document, sectionIdx, groupIdx, entryIdx int, label, value string) error
	DeleteEntry(ctx context.Context, doc *resume.Document, sectionIdx, groupIdx, entryIdx int) error
	DeleteSection(ctx context.Context, doc *resume.Document, sectionIdx int) error
}

type resumeService struct {
	settings settings.Repository
}

func NewResumeService(repo settings.Repository) ResumeService {
	return &resumeService{settings: repo}
}

func (s *resumeService) Load(ctx context.Context) (*resume.Document, error) {
	raw, err := s.settings.Get(ctx, settings.KeyDocument)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	if raw != nil {
		var doc resume.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("stored document is corrupt: %w", err)
		}
		return &doc, nil
	}

	doc, migrated, err := s.migrateLegacy(ctx)
	if err != nil {
		return nil, err
	}
	if migrated {
		if err := s.persist(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	return &resume.Document{}, nil
}

// migrateLegacy converts the old flat tag→content map, if present. Keys
// are processed in sorted order so migration is deterministic.
func (s *resumeService) migrateLegacy(ctx context.Context) (*resume.Document, bool, error) {
	raw, err := s.settings.Get(ctx, settings.KeyLegacyData)
	if err != nil {
		return nil, false, fmt.Errorf("loading legacy data: %w", err)
	}
	if raw == nil {
		return nil, false, nil
	}

	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, false, fmt.Errorf("legacy data is corrupt: %w", err)
	}

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := markup.FromFlatMap(keys, flat)
	if doc.Empty() {
		return nil, false, nil
	}
	return doc, true, nil
}

func (s *resumeService) ImportText(ctx context.Context, fileName, text string) (*resume.Document, error) {
	doc := markup.Parse(text)
	if doc.Empty() {
		return nil, fmt.Errorf("no tagged content found: %w", common.ErrValidation)
	}

	if err := s.persist(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.settings.Set(ctx, settings.KeyFileName, []byte(fileName)); err != nil {
		return nil, fmt.Errorf("saving file name: %w", err)
	}
	return doc, nil
}

func (s *resumeService) ExportText(doc *resume.Document) string {
	return markup.Render(doc)
}

func (s *resumeService) FileName(ctx context.Context) (string, error) {
	raw, err := s.settings.Get(ctx, settings.KeyFileName)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

func (s *resumeService) AddSection(ctx context.Context, doc *resume.Document, name, groupTitle string) error {
	if err := doc.AddSection(name, groupTitle); err != nil {
		return err
	}
	return s.persist(ctx, doc)
}

func (s *resumeService) AddEntry(ctx context.Context, doc *resume.Document, sectionIdx, groupIdx int, e resume.Entry) error {
	if err := doc.AddEntry(sectionIdx, groupIdx, e); err != nil {
		return err
	}
	return s.persist(ctx, doc)
}

func (s *resumeService) EditEntry(ctx context.Context, doc *resume.Document, sectionIdx, groupIdx, entryIdx int, label, value string) error {
	if err := doc.EditEntry(sectionIdx, groupIdx, entryIdx, label, value); err != nil {
		return err
	}
	return s.persist(ctx, doc)
}

func (s *resumeService) DeleteEntry(ctx context.Context, doc *resume.Document, sectionIdx, groupIdx, entryIdx int) error {
	if err := doc.DeleteEntry(sectionIdx, groupIdx, entryIdx); err != nil {
		return err
	}
	return s.persist(ctx, doc)
}

func (s *resumeService) DeleteSection(ctx context.Context, doc *resume.Document, sectionIdx int) error {
	if err := doc.DeleteSection(sectionIdx); err != nil {
		return err
	}
	return s.persist(ctx, doc)
}

// persist writes the document and its rendered export under their store
// keys. Both writes go through on every mutation (write-through).
func (s *resumeService) persist(ctx context.Context, doc *resume.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	if err := s.settings.Set(ctx, settings.KeyDocument, raw); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	if err := s.settings.Set(ctx, settings.KeyExportText, []byte(markup.Render(doc))); err != nil {
		return fmt.Errorf("saving export text: %w", err)
	}
	return nil
}
