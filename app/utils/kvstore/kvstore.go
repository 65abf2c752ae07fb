package kvstore

// Store is the durable key-value storage the cart engine persists into.
// Get returns (nil, nil) for a missing key.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Provider hands out a private Store per cart ID.
type Provider interface {
	Bucket(name string) Store
}
