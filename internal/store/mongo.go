package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DominicRaja2005/library-management-system/internal/models"
)

type MongoCatalogStore struct {
	Collection *mongo.Collection
}

func NewMongoCatalogStore(coll *mongo.Collection) *MongoCatalogStore {
	return &MongoCatalogStore{Collection: coll}
}

// EnsureIndexes creates the unique index on isbn. Must run before the first
// write; the index is what keeps concurrent duplicate inserts out.
func (s *MongoCatalogStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.Collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isbn", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "title", Value: 1}},
		},
	})
	return err
}

func (s *MongoCatalogStore) Insert(ctx context.Context, book *models.Book) (*models.Book, error) {
	res, err := s.Collection.InsertOne(ctx, book)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateISBN
		}
		return nil, err
	}

	book.ID = res.InsertedID.(primitive.ObjectID)
	return book, nil
}

func (s *MongoCatalogStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Book, error) {
	var book models.Book
	err := s.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&book)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (s *MongoCatalogStore) FindByISBN(ctx context.Context, isbn string) (*models.Book, error) {
	var book models.Book
	err := s.Collection.FindOne(ctx, bson.M{"isbn": isbn}).Decode(&book)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (s *MongoCatalogStore) List(ctx context.Context) ([]models.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	books := []models.Book{}
	if err = cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (s *MongoCatalogStore) Update(ctx context.Context, id primitive.ObjectID, fields map[string]any) (*models.Book, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var book models.Book
	err := s.Collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		opts,
	).Decode(&book)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateISBN
		}
		return nil, err
	}
	return &book, nil
}

func (s *MongoCatalogStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoCatalogStore) Stats(ctx context.Context) (CatalogStats, error) {
	var stats CatalogStats

	totalTitles, err := s.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return stats, err
	}
	stats.TotalTitles = totalTitles

	categories, err := s.Collection.Distinct(ctx, "category", bson.M{})
	if err != nil {
		return stats, err
	}
	stats.Categories = int64(len(categories))

	cursor, err := s.Collection.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"copies":    bson.M{"$sum": "$quantity"},
			"available": bson.M{"$sum": "$available"},
		}}},
	})
	if err != nil {
		return stats, err
	}
	defer cursor.Close(ctx)

	var totals []struct {
		Copies    int64 `bson:"copies"`
		Available int64 `bson:"available"`
	}
	if err = cursor.All(ctx, &totals); err != nil {
		return stats, err
	}
	if len(totals) > 0 {
		stats.TotalCopies = totals[0].Copies
		stats.AvailableCopies = totals[0].Available
	}

	return stats, nil
}
