package models

// Companion counts how many outfits an item shared with a target item.
type Companion struct {
	ItemID int64
	Count  int
}
