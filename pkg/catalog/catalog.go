package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/toolgate/pkg/logger"
)

// Tool is a subscribable product. PriceID is the payment processor's
// recurring price identifier.
type Tool struct {
	ID          int64  `json:"id" yaml:"-"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	PriceID     string `json:"price_id" yaml:"price_id"`
	IsActive    bool   `json:"-" yaml:"is_active"`
}

// Store persists the catalog. Lookups return ErrToolNotFound when no row
// matches; GetToolByName compares names case-insensitively.
type Store interface {
	ListTools(ctx context.Context) ([]Tool, error)
	GetToolByID(ctx context.Context, id int64) (*Tool, error)
	GetToolByName(ctx context.Context, name string) (*Tool, error)
	// UpsertTool inserts the tool or updates the one with the same name
	// (case-insensitive) and sets ID.
	UpsertTool(ctx context.Context, tool *Tool) error
}

// Service resolves and lists tools.
type Service struct {
	store  Store
	logger *slog.Logger
}

type Option func(*Service)

// WithLogger sets a custom logger for the service
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a catalog service backed by store.
func New(store Store, opts ...Option) *Service {
	if store == nil {
		panic("catalog: Store is required")
	}
	s := &Service{
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every tool in id order. An empty catalog yields an empty,
// non-nil slice.
func (s *Service) List(ctx context.Context) ([]Tool, error) {
	tools, err := s.store.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	if tools == nil {
		tools = []Tool{}
	}
	return tools, nil
}

// Resolve finds a tool by reference. A reference made only of digits is an
// id; anything else is matched against tool names ignoring case.
func (s *Service) Resolve(ctx context.Context, ref string) (*Tool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrMissingToolRef
	}

	var (
		tool *Tool
		err  error
	)
	if isDigits(ref) {
		id, perr := strconv.ParseInt(ref, 10, 64)
		if perr != nil {
			return nil, ErrToolNotFound
		}
		tool, err = s.store.GetToolByID(ctx, id)
	} else {
		tool, err = s.store.GetToolByName(ctx, ref)
	}

	if errors.Is(err, ErrToolNotFound) {
		return nil, ErrToolNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tool %q: %w", ref, err)
	}
	return tool, nil
}

// Import upserts tools by name. It stops at the first invalid or failed
// tool and reports how many were written before it.
func (s *Service) Import(ctx context.Context, tools []Tool) (int, error) {
	for i := range tools {
		t := &tools[i]
		t.Name = strings.TrimSpace(t.Name)
		t.PriceID = strings.TrimSpace(t.PriceID)

		if t.Name == "" {
			return i, fmt.Errorf("tool #%d: %w", i+1, ErrMissingName)
		}
		if t.PriceID == "" {
			return i, fmt.Errorf("tool %q: %w", t.Name, ErrMissingPriceID)
		}
		if isDigits(t.Name) {
			return i, fmt.Errorf("tool %q: %w", t.Name, ErrNumericName)
		}

		if err := s.store.UpsertTool(ctx, t); err != nil {
			return i, fmt.Errorf("failed to upsert tool %q: %w", t.Name, err)
		}

		s.logger.InfoContext(ctx, "tool imported",
			logger.ToolID(t.ID),
			slog.String("name", t.Name),
			logger.Component("catalog"),
		)
	}
	return len(tools), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
