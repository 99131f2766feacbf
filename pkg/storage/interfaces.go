package storage

import "io"

// StorageService persists uploaded files under a key like
// "gallery/<random>_<name>". URL maps a key to the path stored in
// documents; Key inverts it so a stored path can be deleted later.
type StorageService interface {
	Upload(key string, reader io.Reader) error
	Delete(key string) error
	URL(key string) string
	Key(url string) string
}
