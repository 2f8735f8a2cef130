package apikeys

// Key is an issued API credential. ID is the formatted handle used for
// deletion; Secret is the bearer value callers present (wire field "key").
// Keys are immutable and never expire; they live until explicitly deleted.
type Key struct {
	ID     string `bson:"id" json:"id"`
	Secret string `bson:"key" json:"key"`
}
