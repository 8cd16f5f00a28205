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

type userRepository struct {
	collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return newUserRepository(db, nil)
}

func newUserRepository(db *mongo.Database, session mongo.Session) *userRepository {
	return &userRepository{collection: newCollection(db, usersCollection, session)}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()})
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(repo.bind(ctx), filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return doc.toEntity(), nil
}

func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	count, err := repo.coll.CountDocuments(repo.bind(ctx), bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "failed to count users by email")
	}

	return count > 0, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	stampCreate(&user.CreatedAt, &user.UpdatedAt)

	if _, err := repo.coll.InsertOne(repo.bind(ctx), toUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = now()

	doc := toUserDocument(user)
	result, err := repo.coll.ReplaceOne(repo.bind(ctx), bson.M{"_id": doc.ID}, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	if result.MatchedCount == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := repo.coll.DeleteOne(repo.bind(ctx), bson.M{"_id": id.String()})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	if result.DeletedCount == 0 {
		return domainerrors.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter, page entity.Page) ([]*entity.User, int64, error) {
	ctx = repo.bind(ctx)

	query := bson.M{}
	if len(filter.SellerStatuses) > 0 {
		statuses := make([]string, 0, len(filter.SellerStatuses))
		for _, status := range filter.SellerStatuses {
			statuses = append(statuses, status.String())
		}
		query["seller_status"] = bson.M{"$in": statuses}
	}

	total, err := repo.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	cursor, err := repo.coll.Find(ctx, query, options.Find().
		SetSort(bsonKeys("created_at", -1)).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size)))
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list users")
	}

	docs, err := decodeAll[userDocument](ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	users := make([]*entity.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toEntity())
	}

	return users, total, nil
}
