package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DominicRaja2005/library-management-system/internal/constants"
	"github.com/DominicRaja2005/library-management-system/internal/models"
	"github.com/DominicRaja2005/library-management-system/internal/store"
	"github.com/DominicRaja2005/library-management-system/internal/utils"
)

const defaultStoreTimeout = 5 * time.Second

type InventoryService struct {
	Store        store.CatalogStore
	AuditLogger  *utils.Logger
	StoreTimeout time.Duration
}

func NewInventoryService(s store.CatalogStore, logger *utils.Logger) *InventoryService {
	return &InventoryService{
		Store:        s,
		AuditLogger:  logger,
		StoreTimeout: defaultStoreTimeout,
	}
}

type CreateBookInput struct {
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	Category      string `json:"category"`
	PublishedYear *int   `json:"publishedYear"`
	Quantity      *int   `json:"quantity"`
}

// UpdateBookInput is the allow-list of mutable fields. id, createdAt and
// addedBy are not representable here, so a payload naming them is ignored.
type UpdateBookInput struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	ISBN          *string `json:"isbn"`
	Category      *string `json:"category"`
	PublishedYear *int    `json:"publishedYear"`
	Quantity      *int    `json:"quantity"`
	Available     *int    `json:"available"`
}

func (s *InventoryService) ListBooks(ctx context.Context) ([]models.Book, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	books, err := s.Store.List(ctx)
	if err != nil {
		return nil, s.classify(err)
	}
	return books, nil
}

func (s *InventoryService) GetBook(ctx context.Context, id string) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any record.
		return nil, ErrNotFound
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	book, err := s.Store.FindByID(ctx, oid)
	if err != nil {
		return nil, s.classify(err)
	}
	return book, nil
}

func (s *InventoryService) CreateBook(ctx context.Context, principalID string, in CreateBookInput) (*models.Book, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.ISBN = strings.TrimSpace(in.ISBN)
	in.Category = strings.TrimSpace(in.Category)

	if in.Title == "" || in.Author == "" || in.ISBN == "" || in.Category == "" ||
		in.PublishedYear == nil || in.Quantity == nil {
		return nil, &ValidationError{Message: "Please fill in all fields"}
	}
	if *in.Quantity < 0 {
		return nil, &ValidationError{Message: "Quantity must not be negative"}
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	// Friendly pre-check; the store's unique index is the authority when two
	// creates race past this point.
	_, err := s.Store.FindByISBN(ctx, in.ISBN)
	if err == nil {
		return nil, &ConflictError{Message: "Book with this ISBN already exists"}
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, s.classify(err)
	}

	book := &models.Book{
		Title:         in.Title,
		Author:        in.Author,
		ISBN:          in.ISBN,
		Category:      in.Category,
		PublishedYear: *in.PublishedYear,
		Quantity:      *in.Quantity,
		Available:     *in.Quantity,
		AddedBy:       principalID,
		CreatedAt:     time.Now(),
	}

	created, err := s.Store.Insert(ctx, book)
	if err != nil {
		return nil, s.classify(err)
	}

	s.audit(ctx, constants.Create, principalID, created)
	return created, nil
}

func (s *InventoryService) UpdateBook(ctx context.Context, principalID, id string, in UpdateBookInput) (*models.Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	existing, err := s.Store.FindByID(ctx, oid)
	if err != nil {
		return nil, s.classify(err)
	}

	fields, err := s.mergeFields(ctx, existing, in)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return existing, nil
	}

	updated, err := s.Store.Update(ctx, oid, fields)
	if err != nil {
		return nil, s.classify(err)
	}

	s.audit(ctx, constants.Update, principalID, fields)
	return updated, nil
}

// mergeFields applies the partial input to the existing record and validates
// the result, so the quantity/available invariant is checked against the
// record as it will be stored, not against the input in isolation.
func (s *InventoryService) mergeFields(ctx context.Context, existing *models.Book, in UpdateBookInput) (map[string]any, error) {
	fields := map[string]any{}

	setString := func(key string, val *string) error {
		if val == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*val)
		if trimmed == "" {
			return &ValidationError{Message: key + " must not be empty"}
		}
		fields[key] = trimmed
		return nil
	}

	if err := setString("title", in.Title); err != nil {
		return nil, err
	}
	if err := setString("author", in.Author); err != nil {
		return nil, err
	}
	if err := setString("category", in.Category); err != nil {
		return nil, err
	}
	if err := setString("isbn", in.ISBN); err != nil {
		return nil, err
	}

	if isbn, ok := fields["isbn"]; ok && isbn != existing.ISBN {
		other, err := s.Store.FindByISBN(ctx, isbn.(string))
		if err == nil && other.ID != existing.ID {
			return nil, &ConflictError{Message: "Book with this ISBN already exists"}
		}
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, s.classify(err)
		}
	}

	if in.PublishedYear != nil {
		fields["published_year"] = *in.PublishedYear
	}

	quantity := existing.Quantity
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, &ValidationError{Message: "Quantity must not be negative"}
		}
		quantity = *in.Quantity
		fields["quantity"] = quantity
	}

	if in.Available != nil {
		if *in.Available < 0 || *in.Available > quantity {
			return nil, &ValidationError{Message: "Available must be between 0 and quantity"}
		}
		fields["available"] = *in.Available
	} else if existing.Available > quantity {
		// Quantity dropped below the current available count; clamp.
		fields["available"] = quantity
	}

	return fields, nil
}

func (s *InventoryService) DeleteBook(ctx context.Context, principalID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.Store.Delete(ctx, oid); err != nil {
		return s.classify(err)
	}

	s.audit(ctx, constants.Delete, principalID, id)
	return nil
}

func (s *InventoryService) CatalogStats(ctx context.Context) (store.CatalogStats, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	stats, err := s.Store.Stats(ctx)
	if err != nil {
		return stats, s.classify(err)
	}
	return stats, nil
}

func (s *InventoryService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := s.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func (s *InventoryService) classify(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrDuplicateISBN):
		return &ConflictError{Message: "Book with this ISBN already exists"}
	default:
		return ErrUnavailable
	}
}

func (s *InventoryService) audit(ctx context.Context, action, performedBy string, data any) {
	if s.AuditLogger == nil {
		return
	}
	s.AuditLogger.Log(ctx, models.BookEntity, action, performedBy, data)
}
