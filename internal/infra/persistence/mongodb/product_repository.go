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

type productRepository struct {
	collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return newProductRepository(db, nil)
}

func newProductRepository(db *mongo.Database, session mongo.Session) *productRepository {
	return &productRepository{collection: newCollection(db, productsCollection, session)}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var doc productDocument
	if err := repo.coll.FindOne(repo.bind(ctx), bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return doc.toEntity(), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	return repo.find(ctx, bson.M{"_id": bson.M{"$in": idStrings(ids)}})
}

func (repo *productRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error) {
	return repo.find(ctx, bson.M{"shop_id": shopID.String()}, options.Find().SetSort(bsonKeys("created_at", -1)))
}

func (repo *productRepository) List(ctx context.Context, page entity.Page) ([]*entity.Product, int64, error) {
	total, err := repo.coll.CountDocuments(repo.bind(ctx), bson.M{})
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	products, err := repo.find(ctx, bson.M{}, options.Find().
		SetSort(bsonKeys("created_at", -1)).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size)))
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (repo *productRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*entity.Product, error) {
	ctx = repo.bind(ctx)

	cursor, err := repo.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	docs, err := decodeAll[productDocument](ctx, cursor)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, doc.toEntity())
	}

	return products, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	stampCreate(&product.CreatedAt, &product.UpdatedAt)

	doc, err := toProductDocument(product)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to encode product")
	}

	if _, err := repo.coll.InsertOne(repo.bind(ctx), doc); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	product.UpdatedAt = now()

	doc, err := toProductDocument(product)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to encode product")
	}

	result, err := repo.coll.UpdateOne(repo.bind(ctx), bson.M{"_id": doc.ID}, bson.M{"$set": bson.M{
		"name":                 doc.Name,
		"description":          doc.Description,
		"price":                doc.Price,
		"stock":                doc.Stock,
		"image_refs":           doc.ImageRefs,
		"featured_image_index": doc.FeaturedImageIndex,
		"updated_at":           doc.UpdatedAt,
	}})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	if result.MatchedCount == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(repo.bind(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	if result.DeletedCount == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) DeleteByShop(ctx context.Context, shopID uuid.UUID) (int64, error) {
	result, err := repo.coll.DeleteMany(repo.bind(ctx), bson.M{"shop_id": shopID.String()})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to delete shop products")
	}

	return result.DeletedCount, nil
}
