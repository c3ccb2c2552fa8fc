package models

// Counter is one named integer sequence in the counters collection. The
// sequence value only moves forward; every read-modify-write is atomic.
type Counter struct {
	Name string `bson:"_id" json:"_id"`
	Seq  int64  `bson:"seq" json:"seq"`
}

// OrderIDCounter names the sequence that backs order identifier allocation.
const OrderIDCounter = "orderId"
