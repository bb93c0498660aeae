package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Teacher struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"userId" json:"user_id"`
	Branch *string            `bson:"branch" json:"branch"`
}

type Student struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"userId" json:"user_id"`
	Branch   *string            `bson:"branch" json:"branch"`
	Semester *int               `bson:"semester" json:"semester"`
}

type Subject struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
}
