package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Listing struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description" json:"description"`
	Beds              string             `bson:"beds" json:"beds"`
	Dimensions        string             `bson:"dimensions" json:"dimensions"`
	Location          string             `bson:"location" json:"location"`
	Price             string             `bson:"price" json:"price"`
	ImagePath         string             `bson:"imagePath" json:"imagePath"`
	ModelPath         string             `bson:"modelPath" json:"modelPath"`
	ImageOriginalName string             `bson:"imageOriginalName" json:"imageOriginalName"`
	ModelOriginalName string             `bson:"modelOriginalName" json:"modelOriginalName"`
	UploadDate        time.Time          `bson:"uploadDate" json:"uploadDate"`
}
