package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/infra/persistence/model"
)

// userRepository implements the domain UserRepository interface on top of a
// MongoDB collection.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		collection: db.Collection(model.UserModel{}.CollectionName()),
	}
}

// FindByID retrieves a single user by their store-assigned identifier.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An identifier that is not a valid ObjectID can never name a
		// record; treat it as absence.
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid})
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email})
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.collection.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user")
	}

	return model.ToUserDomain(&userM), nil
}

// FindAll retrieves every user document in store-native order.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := repo.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}
	defer cursor.Close(ctx)

	var models []model.UserModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, model.ToUserDomain(&models[i]))
	}

	return users, nil
}

// Create persists a new user document and writes the assigned identifier
// and timestamps back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	userM, err := model.FromUserDomain(user)
	if err != nil {
		return errors.Wrap(err, "failed to map user for insert")
	}

	result, err := repo.collection.InsertOne(ctx, userM)
	if err != nil {
		// The unique email index turns the create/check race into a clean
		// duplicate failure.
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("store returned a non-ObjectID identifier")
	}
	user.ID = oid.Hex()

	return nil
}

// Update overwrites the stored document matching the entity's identifier.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	userM, err := model.FromUserDomain(user)
	if err != nil {
		return errors.Wrap(err, "failed to map user for update")
	}

	result, err := repo.collection.ReplaceOne(ctx, bson.M{"_id": userM.ID}, userM)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the document matching the identifier by filter. A missing
// document is not an error, which makes repeated deletes safe.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Nothing with this identifier can exist; the delete is a no-op.
		return nil
	}

	if _, err := repo.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete user")
	}

	return nil
}
