package database

import (
	"context"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"rodut/internal/domain/model"
	repository "rodut/internal/domain/repository/database"
)

type UserRetriever struct {
	db *Database
}

func NewUserRetriever(db *Database) *UserRetriever {
	return &UserRetriever{db: db}
}

func (r *UserRetriever) FirstAdministrator(ctx context.Context) (*model.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var user model.User
	err := r.db.collection(UserCollection).FindOne(ctx,
		bson.M{"role": model.RoleAdministrator},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}}),
	).Decode(&user)
	if err != nil {
		return nil, notFound(err, "failed to retrieve first administrator")
	}

	return &user, nil
}

type AttachmentRetriever struct {
	db *Database
}

func NewAttachmentRetriever(db *Database) *AttachmentRetriever {
	return &AttachmentRetriever{db: db}
}

func (r *AttachmentRetriever) GetAttachmentByID(ctx context.Context, id int64) (*model.Attachment, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var attachment model.Attachment
	err := r.db.collection(AttachmentCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&attachment)
	if err != nil {
		return nil, notFound(err, "failed to retrieve attachment by id")
	}

	return &attachment, nil
}

type OptionRetriever struct {
	db *Database
}

func NewOptionRetriever(db *Database) *OptionRetriever {
	return &OptionRetriever{db: db}
}

func (r *OptionRetriever) GetOption(ctx context.Context, name string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var option model.Option
	err := r.db.collection(OptionCollection).FindOne(ctx, bson.M{"_id": name}).Decode(&option)
	if err != nil {
		return "", notFound(err, "failed to retrieve option")
	}

	return option.Value, nil
}

// notFound maps mongo's no-documents error onto the repository sentinel and
// logs anything else.
func notFound(err error, msg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}

	logger.Error(msg, "err", err)

	return err
}
