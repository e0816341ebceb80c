package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Coordinates is a geographic point. A zero component counts as missing.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// ContactInfo is optional reporter contact data.
type ContactInfo struct {
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email string `json:"email,omitempty" bson:"email,omitempty"`
}

// FoundItem is a reported found object awaiting its owner.
type FoundItem struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Img         string             `json:"img" bson:"img"`
	Location    string             `json:"location" bson:"location"`
	Country     string             `json:"country" bson:"country"`
	Region      string             `json:"viloyat" bson:"viloyat"`
	Coordinates Coordinates        `json:"coordinates" bson:"coordinates"`
	ContactInfo ContactInfo        `json:"contactInfo" bson:"contactInfo"`
	IsClaimed   bool               `json:"isClaimed" bson:"isClaimed"`
	ClaimedBy   string             `json:"claimedBy,omitempty" bson:"claimedBy,omitempty"`
	FoundDate   time.Time          `json:"foundDate" bson:"foundDate"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Lost item categories.
const (
	CategoryElectronics = "electronics"
	CategoryClothing    = "clothing"
	CategoryDocuments   = "documents"
	CategoryJewelry     = "jewelry"
	CategoryOther       = "other"
)

// MaxLostItemImages caps the image list of a lost item on create and update.
const MaxLostItemImages = 4

// LostItem is a reported lost object.
type LostItem struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title             string             `json:"title" bson:"title"`
	Description       string             `json:"description" bson:"description"`
	Images            []string           `json:"images" bson:"images"`
	LastKnownLocation string             `json:"lastKnownLocation" bson:"lastKnownLocation"`
	Country           string             `json:"country" bson:"country"`
	Region            string             `json:"viloyat" bson:"viloyat"`
	Coordinates       Coordinates        `json:"coordinates" bson:"coordinates"`
	ContactInfo       ContactInfo        `json:"contactInfo" bson:"contactInfo"`
	IsFound           bool               `json:"isFound" bson:"isFound"`
	FoundBy           string             `json:"foundBy,omitempty" bson:"foundBy,omitempty"`
	LostDate          time.Time          `json:"lostDate" bson:"lostDate"`
	Category          string             `json:"category" bson:"category"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// FoundItemPatch carries the fields supplied in a partial update. Nil means
// "leave unchanged".
type FoundItemPatch struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Img         *string      `json:"img"`
	Location    *string      `json:"location"`
	Country     *string      `json:"country"`
	Region      *string      `json:"viloyat"`
	Coordinates *Coordinates `json:"coordinates"`
	ContactInfo *ContactInfo `json:"contactInfo"`
	IsClaimed   *bool        `json:"isClaimed"`
	ClaimedBy   *string      `json:"claimedBy"`
	FoundDate   *time.Time   `json:"date"`
}

// LostItemPatch carries the fields supplied in a partial update. A non-nil
// Images slice replaces the whole list.
type LostItemPatch struct {
	Title             *string      `json:"title"`
	Description       *string      `json:"description"`
	Images            []string     `json:"images"`
	LastKnownLocation *string      `json:"lastKnownLocation"`
	Country           *string      `json:"country"`
	Region            *string      `json:"viloyat"`
	Coordinates       *Coordinates `json:"coordinates"`
	ContactInfo       *ContactInfo `json:"contactInfo"`
	IsFound           *bool        `json:"isFound"`
	FoundBy           *string      `json:"foundBy"`
	LostDate          *time.Time   `json:"date"`
	Category          *string      `json:"category"`
}
