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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type shopRepository struct {
	collection
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *mongo.Database) repository.ShopRepository {
	return newShopRepository(db, nil)
}

func newShopRepository(db *mongo.Database, session mongo.Session) *shopRepository {
	return &shopRepository{collection: newCollection(db, shopsCollection, session)}
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, bson.M{"owner_id": ownerID.String()})
}

func (repo *shopRepository) findOne(ctx context.Context, filter bson.M) (*entity.Shop, error) {
	var doc shopDocument
	if err := repo.coll.FindOne(repo.bind(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return doc.toEntity(), nil
}

func (repo *shopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error) {
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	return repo.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	return repo.find(ctx, bson.M{}, options.Find().SetSort(bsonKeys("created_at", -1)))
}

func (repo *shopRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*entity.Shop, error) {
	ctx = repo.bind(ctx)

	cursor, err := repo.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops")
	}

	docs, err := decodeAll[shopDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}

	shops := make([]*entity.Shop, 0, len(docs))
	for _, doc := range docs {
		shops = append(shops, doc.toEntity())
	}

	return shops, nil
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	stampCreate(&shop.CreatedAt, &shop.UpdatedAt)

	if _, err := repo.coll.InsertOne(repo.bind(ctx), toShopDocument(shop)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrShopAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	return nil
}

func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shop.UpdatedAt = now()

	result, err := repo.coll.UpdateOne(repo.bind(ctx), bson.M{"_id": shop.ID.String()}, bson.M{"$set": bson.M{
		"name":        shop.Name,
		"description": shop.Description,
		"logo_ref":    shop.LogoRef,
		"updated_at":  shop.UpdatedAt,
	}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	if result.MatchedCount == 0 {
		return domainerrors.ErrShopNotFound
	}

	return nil
}

func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(repo.bind(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete shop")
	}

	if result.DeletedCount == 0 {
		return domainerrors.ErrShopNotFound
	}

	return nil
}
