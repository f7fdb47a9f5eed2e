package metapi

// ObjectRecord is the raw wire shape of a single collection object. The
// catalog layer converts it into a museum.Artwork; this package stays at
// the transport level.
type ObjectRecord struct {
	ObjectID          int    `json:"objectID"`
	Title             string `json:"title"`
	ArtistDisplayName string `json:"artistDisplayName"`
	ArtistNationality string `json:"artistNationality"`
	ArtistBeginDate   string `json:"artistBeginDate"`
	ArtistEndDate     string `json:"artistEndDate"`
	Classification    string `json:"classification"`
	ObjectDate        string `json:"objectDate"`
	PrimaryImage      string `json:"primaryImage"`
	PrimaryImageSmall string `json:"primaryImageSmall"`
	Department        string `json:"department"`
}

type departmentRecord struct {
	DepartmentID int    `json:"departmentId"`
	DisplayName  string `json:"displayName"`
}

type departmentsResponse struct {
	Departments []departmentRecord `json:"departments"`
}

// objectIDsResponse is returned by both /search and /objects. When nothing
// matches the API sends {"total":0,"objectIDs":null}.
type objectIDsResponse struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}
