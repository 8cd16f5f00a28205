package mongodb

import (
	"context"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// cartRepository embeds items in the cart document, so Save is a single
// atomic write.
type cartRepository struct {
	collection
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return newCartRepository(db, nil)
}

func newCartRepository(db *mongo.Database, session mongo.Session) *cartRepository {
	return &cartRepository{collection: newCollection(db, cartsCollection, session)}
}

func (repo *cartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	var doc cartDocument
	if err := repo.coll.FindOne(repo.bind(ctx), bson.M{"buyer_id": buyerID.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return doc.toEntity(), nil
}

func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	stampCreate(&cart.CreatedAt, &cart.UpdatedAt)

	doc, err := toCartDocument(cart)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to encode cart")
	}

	if _, err := repo.coll.InsertOne(repo.bind(ctx), doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrCartAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return nil
}

func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	items, err := toCartItemDocuments(cart.Items)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to encode cart items")
	}

	result, err := repo.coll.UpdateOne(repo.bind(ctx), bson.M{"_id": cart.ID.String()}, bson.M{"$set": bson.M{
		"items":      items,
		"updated_at": cart.UpdatedAt,
	}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	if result.MatchedCount == 0 {
		return domainerrors.ErrCartNotFound
	}

	return nil
}

func (repo *cartRepository) DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error {
	if _, err := repo.coll.DeleteOne(repo.bind(ctx), bson.M{"buyer_id": buyerID.String()}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}
