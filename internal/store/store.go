package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DominicRaja2005/library-management-system/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")
)

type CatalogStats struct {
	TotalTitles     int64 `json:"totalTitles"`
	TotalCopies     int64 `json:"totalCopies"`
	AvailableCopies int64 `json:"availableCopies"`
	Categories      int64 `json:"categories"`
}

// CatalogStore is the persistence contract for Book records. ISBN uniqueness
// is the store's responsibility: Insert and Update must fail with
// ErrDuplicateISBN when a write would leave two live records with the same
// ISBN, even under concurrent writers.
type CatalogStore interface {
	Insert(ctx context.Context, book *models.Book) (*models.Book, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error)
	FindByISBN(ctx context.Context, isbn string) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
	Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Book, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context) (CatalogStats, error)
}
