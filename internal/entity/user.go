package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

type User struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Password  string             `json:"password" bson:"password"` // plaintext unless PASSWORD_HASHING=bcrypt
	Image     string             `json:"image" bson:"image"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the part of a user that is safe to hand to other services.
type UserProfile struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Image     string             `json:"image"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Image:     u.Image,
		CreatedAt: u.CreatedAt,
	}
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Image    string `json:"image"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateNameRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type UpdatePhotoRequest struct {
	Email string `json:"email"`
	Image string `json:"image"`
}

/*
Mysql Schema (STORE_DRIVER=mysql):

CREATE TABLE users (
	id CHAR(24) PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) CHARACTER SET utf8mb4 COLLATE utf8mb4_bin NOT NULL,
	password VARCHAR(255) NOT NULL,
	image TEXT NOT NULL,
	created_at DATETIME(3) NOT NULL
);

// lookup index only, uniqueness is checked by the register pre-read
CREATE INDEX email_idx ON users(email);

*/
