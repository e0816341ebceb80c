package repository

import (
	"math"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Pagination defaults. Out-of-range or unparsable values clamp to these.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListQuery holds the optional filters and pagination for the listing
// collections. Status maps to isClaimed (found items) or isFound (lost
// items); nil means "no status filter". Category only applies to lost items.
type ListQuery struct {
	Status   *bool
	Category string
	Country  string
	Region   string
	Page     int
	Limit    int
}

// normalized clamps pagination values to their defaults.
func (q ListQuery) normalized() ListQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	return q
}

// filter builds the query document. Country and region match as
// case-insensitive unanchored substrings; category matches literally.
func (q ListQuery) filter(statusField string) bson.M {
	filter := bson.M{}
	if q.Status != nil {
		filter[statusField] = *q.Status
	}
	if q.Category != "" {
		filter["category"] = q.Category
	}
	if q.Country != "" {
		filter["country"] = containsCI(q.Country)
	}
	if q.Region != "" {
		filter["viloyat"] = containsCI(q.Region)
	}
	return filter
}

// findOptions sorts by the entity's date field, newest first, and applies
// skip/limit for the requested page.
func (q ListQuery) findOptions(dateField string) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: dateField, Value: -1}}).
		SetSkip(int64((q.Page - 1) * q.Limit)).
		SetLimit(int64(q.Limit))
}

// Pagination is the page metadata returned next to a listing page.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
}

func (q ListQuery) pagination(total int64) *Pagination {
	return &Pagination{
		Current: q.Page,
		Pages:   int(math.Ceil(float64(total) / float64(q.Limit))),
		Total:   total,
	}
}

// containsCI builds a case-insensitive substring matcher with the input
// treated as a literal, not a pattern.
func containsCI(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
