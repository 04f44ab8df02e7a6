package driven

// ConfigStore is a flat key/value view of the user configuration. Keys use
// dot notation ("search.sort"); how they are laid out on disk is up to the
// implementation.
//
// Typed getters return the zero value when a key is missing or holds a
// value of another type. Set and Delete persist immediately, and deleting a
// missing key is not an error.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	Set(key string, value any) error
	Delete(key string) error
}
