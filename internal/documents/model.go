package documents

import "time"

// Document is the persistent model for stored text blobs. ID and Name are
// two independent identifier spaces; lookups treat them as one union
// keyspace, so both carry unique indexes.
type Document struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Content   string    `bson:"content,omitempty" json:"content,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Listing is the projection returned by List. Content is never included in
// listings.
type Listing struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
