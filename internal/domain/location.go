package domain

// Location is an addressable place in the namespace: the root, or one
// folder identified by its id.
type Location struct {
	FolderID *string
}

func RootLocation() Location {
	return Location{}
}

func FolderLocation(id string) Location {
	return Location{FolderID: &id}
}

func (l Location) IsRoot() bool {
	return l.FolderID == nil
}

func (l Location) String() string {
	if l.FolderID == nil {
		return "root"
	}
	return "folder(" + *l.FolderID + ")"
}
