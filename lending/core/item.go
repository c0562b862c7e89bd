package core

// CatalogItem is a lend-able book of the collection.
// Available is true exactly when HeldBy is empty.
type CatalogItem struct {
	Key       ItemKeyString
	Title     string
	Author    string
	Category  string
	Available bool
	HeldBy    HolderIDString
}

// NewCatalogItem creates an available item.
func NewCatalogItem(key ItemKeyString, title string, author string, category string) *CatalogItem {
	return &CatalogItem{
		Key:       key,
		Title:     title,
		Author:    author,
		Category:  category,
		Available: true,
	}
}

// MarkLoaned hands the item to the holder.
// The caller must have checked Available before; this method does not.
func (i *CatalogItem) MarkLoaned(holderID HolderIDString) {
	i.Available = false
	i.HeldBy = holderID
}

// MarkReturned puts the item back on the shelf.
func (i *CatalogItem) MarkReturned() {
	i.Available = true
	i.HeldBy = ""
}
