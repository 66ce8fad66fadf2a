package repository

import (
	"context"
	"errors"
	"fmt"
	"gamehub-server/internal/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection = "users"
	gamesCollection = "games"
)

// ConnectMongo opens the client and pings the deployment. The client is
// meant to live as long as the process; nothing disconnects it.
func ConnectMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(dbName), nil
}

type MongoUserRepository struct {
	users *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{users: db.Collection(usersCollection)}
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.users.InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepository) UpdateName(ctx context.Context, email, name string) (int64, error) {
	return r.set(ctx, email, "name", name)
}

func (r *MongoUserRepository) UpdateImage(ctx context.Context, email, image string) (int64, error) {
	return r.set(ctx, email, "image", image)
}

func (r *MongoUserRepository) set(ctx context.Context, email, field, value string) (int64, error) {
	res, err := r.users.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return 0, err
	}

	return res.ModifiedCount, nil
}

type MongoGameRepository struct {
	games *mongo.Collection
}

func NewMongoGameRepository(db *mongo.Database) *MongoGameRepository {
	return &MongoGameRepository{games: db.Collection(gamesCollection)}
}

func (r *MongoGameRepository) GetGames(ctx context.Context) ([]entity.Game, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoGameRepository) GetGamesByOwner(ctx context.Context, email *string) ([]entity.Game, error) {
	// a null filter also matches documents where the field is missing
	var owner interface{}
	if email != nil {
		owner = *email
	}
	return r.find(ctx, bson.M{"userEmail": owner})
}

func (r *MongoGameRepository) GetGameByID(ctx context.Context, id primitive.ObjectID) (*entity.Game, error) {
	var game entity.Game
	err := r.games.FindOne(ctx, bson.M{"_id": id}).Decode(&game)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &game, nil
}

func (r *MongoGameRepository) GetLatestGames(ctx context.Context, limit int64) ([]entity.Game, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, bson.D{}, opts)
}

func (r *MongoGameRepository) CreateGame(ctx context.Context, game *entity.Game) error {
	if game.ID.IsZero() {
		game.ID = primitive.NewObjectID()
	}
	_, err := r.games.InsertOne(ctx, game)
	return err
}

func (r *MongoGameRepository) DeleteGame(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.games.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}

	return res.DeletedCount, nil
}

func (r *MongoGameRepository) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]entity.Game, error) {
	cursor, err := r.games.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}

	games := []entity.Game{}
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}
	if games == nil {
		games = []entity.Game{}
	}

	return games, nil
}
