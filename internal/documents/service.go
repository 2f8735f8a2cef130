package documents

import (
	"context"
	"errors"

	"github.com/textvault/textvault/internal/apperr"
	"github.com/textvault/textvault/internal/ident"
	"github.com/textvault/textvault/pkg/logger"
)

// ContentMirror receives best-effort copies of document content (object
// storage). Mirror failures are logged and never fail the request.
type ContentMirror interface {
	Put(ctx context.Context, id, name, content string) error
	Remove(ctx context.Context, id string) error
}

// Service owns identifier resolution and overwrite/not-found policy on top
// of the repository.
type Service struct {
	repo   Repository
	mirror ContentMirror // nil when disabled
}

func NewService(repo Repository, mirror ContentMirror) *Service {
	return &Service{repo: repo, mirror: mirror}
}

// Create stores a new document and returns its generated ID. An empty name
// gets a generated default. When the name is taken: overwrite=false is a
// conflict; overwrite=true replaces the prior record (the old record is
// removed and a fresh one inserted under a new ID).
//
// The existence check and the insert are separate storage calls. Two
// concurrent creates for the same name can both pass the check; the unique
// index rejects the loser and that surfaces as the same conflict.
func (s *Service) Create(ctx context.Context, name, content string, overwrite bool) (string, error) {
	if name == "" {
		name = ident.DefaultName()
	}
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return "", err
	}
	if existing != nil {
		if !overwrite {
			return "", apperr.Conflict("File name already exists")
		}
		if err := s.repo.DeleteByID(ctx, existing.ID); err != nil && !errors.Is(err, ErrNotFound) {
			return "", err
		}
		s.mirrorRemove(ctx, existing.ID)
	}
	doc := &Document{ID: ident.DocumentID(), Name: name, Content: content}
	if err := s.repo.Insert(ctx, doc); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return "", apperr.Conflict("File name already exists")
		}
		return "", err
	}
	s.mirrorPut(ctx, doc)
	return doc.ID, nil
}

// Resolve looks a document up by ID or name.
func (s *Service) Resolve(ctx context.Context, identifier string) (*Document, error) {
	d, err := s.repo.FindByIDOrName(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.NotFound("File not found")
	}
	return d, nil
}

// Update replaces only the content of the resolved document; id and name
// are never touched.
func (s *Service) Update(ctx context.Context, identifier, content string) error {
	d, err := s.Resolve(ctx, identifier)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateContentByID(ctx, d.ID, content); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("File not found")
		}
		return err
	}
	d.Content = content
	s.mirrorPut(ctx, d)
	return nil
}

// Delete resolves then removes the document.
func (s *Service) Delete(ctx context.Context, identifier string) error {
	d, err := s.Resolve(ctx, identifier)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, d.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound("File not found")
		}
		return err
	}
	s.mirrorRemove(ctx, d.ID)
	return nil
}

// List returns id/name pairs for every document, content excluded.
func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}

func (s *Service) mirrorPut(ctx context.Context, d *Document) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Put(ctx, d.ID, d.Name, d.Content); err != nil {
		logger.Warnf("content mirror put %s: %v", d.ID, err)
	}
}

func (s *Service) mirrorRemove(ctx context.Context, id string) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Remove(ctx, id); err != nil {
		logger.Warnf("content mirror remove %s: %v", id, err)
	}
}
