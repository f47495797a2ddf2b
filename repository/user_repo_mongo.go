package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/models"
)

type MongoUserRepo struct {
	DB *mongo.Client
}

func NewMongoUserRepo(db *mongo.Client) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) CreateUser(user *models.User, password string) error {
	ctx := context.Background()

	existing, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrDuplicateEmail
	}

	if password == "" {
		return errors.New("password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hashed)

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := nextSequence(ctx, r.DB, "users")
	if err != nil {
		return err
	}
	user.ID = id

	_, err = r.DB.Database(mongoDatabase).Collection("users").InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepo) GetUserByEmail(email string) (*models.User, error) {
	return r.findOne(bson.M{"email": email})
}

func (r *MongoUserRepo) GetUserByID(id int64) (*models.User, error) {
	return r.findOne(bson.M{"id": id})
}

func (r *MongoUserRepo) findOne(filter bson.M) (*models.User, error) {
	ctx := context.Background()
	user := &models.User{}

	err := r.DB.Database(mongoDatabase).Collection("users").
		FindOne(ctx, filter).Decode(user)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) UpdateLastLogin(id int64) error {
	ctx := context.Background()
	_, err := r.DB.Database(mongoDatabase).Collection("users").
		UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"last_login": time.Now().UTC()}})
	return err
}
