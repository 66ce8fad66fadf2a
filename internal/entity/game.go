package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type Game struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	CoverImage  string             `json:"coverImage" bson:"coverImage"`
	Description string             `json:"description" bson:"description"`
	Rating      float64            `json:"rating" bson:"rating"`
	Price       float64            `json:"price" bson:"price"`
	Genre       string             `json:"genre" bson:"genre"`
	UserEmail   *string            `json:"userEmail" bson:"userEmail"` // owner, nil when the game was added anonymously
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// GameRequest keeps every field raw so the add-game validation can apply
// truthiness to what the client actually sent before any coercion.
type GameRequest struct {
	Title       Loose `json:"title"`
	CoverImage  Loose `json:"coverImage"`
	Description Loose `json:"description"`
	Rating      Loose `json:"rating"`
	Price       Loose `json:"price"`
	Genre       Loose `json:"genre"`
	UserEmail   Loose `json:"userEmail"`
}

/*
Mysql Schema (STORE_DRIVER=mysql):

CREATE TABLE games (
	id CHAR(24) PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	cover_image TEXT NOT NULL,
	description TEXT NOT NULL,
	rating DOUBLE NOT NULL,
	price DOUBLE NOT NULL,
	genre VARCHAR(100) NOT NULL,
	user_email VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NULL,
	created_at DATETIME(3) NOT NULL
);

CREATE INDEX user_email_idx ON games(user_email);
CREATE INDEX created_at_idx ON games(created_at);

*/
