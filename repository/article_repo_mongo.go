package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thethao247/backend/models"
)

type MongoArticleRepo struct {
	DB *mongo.Client
}

func NewMongoArticleRepo(db *mongo.Client) *MongoArticleRepo {
	return &MongoArticleRepo{DB: db}
}

func (r *MongoArticleRepo) articles() *mongo.Collection {
	return r.DB.Database(mongoDatabase).Collection("articles")
}

func (r *MongoArticleRepo) CreateArticle(article *models.Article) error {
	ctx := context.Background()

	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now
	article.Views = 0

	id, err := nextSequence(ctx, r.DB, "articles")
	if err != nil {
		return err
	}
	article.ID = id

	_, err = r.articles().InsertOne(ctx, article)
	return err
}

func (r *MongoArticleRepo) GetArticles(category string, limit int) ([]*models.Article, error) {
	ctx := context.Background()

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.articles().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var articles []*models.Article
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// GetArticleByID uses $inc inside FindOneAndUpdate so the view-counter bump
// is atomic on the server.
func (r *MongoArticleRepo) GetArticleByID(id int64) (*models.Article, error) {
	ctx := context.Background()
	article := &models.Article{}

	err := r.articles().FindOneAndUpdate(
		ctx,
		bson.M{"id": id},
		bson.M{"$inc": bson.M{"views": int64(1)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(article)

	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	return article, nil
}

func (r *MongoArticleRepo) CountArticles() (int64, error) {
	ctx := context.Background()
	return r.articles().CountDocuments(ctx, bson.M{})
}
