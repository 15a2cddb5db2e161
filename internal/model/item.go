package model

// Item is a single todo entry. It has no identity beyond its position
// in the active list.
type Item struct {
	Title string
}

// Titles returns the item texts in order.
func Titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

// FromTitles builds items from raw lines of text.
func FromTitles(titles []string) []Item {
	out := make([]Item, len(titles))
	for i, t := range titles {
		out[i] = Item{Title: t}
	}
	return out
}
