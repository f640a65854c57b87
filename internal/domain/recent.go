package domain

// RecentFolder records a folder that was listed, with enough of its parent
// to resolve "..".
type RecentFolder struct {
	Name       string
	ID         ItemID
	ParentName string
	ParentID   ItemID
}

func RecentFolderFromItem(item Item) RecentFolder {
	return RecentFolder{
		Name:       item.Name,
		ID:         item.ID,
		ParentName: item.ParentName,
		ParentID:   item.ParentID,
	}
}

// Snapshot is the persisted session state. History and Recent are ordered
// oldest first.
type Snapshot struct {
	History []Item
	LastID  ItemID
	Recent  []RecentFolder
}
