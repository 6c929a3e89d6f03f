package entity

// Language is an available marketplace locale. Exactly one language is the
// system default; translation loading widens the caller locale with it.
type Language struct {
	ID      uint64
	Locale  string
	Default bool
	Active  bool
}
