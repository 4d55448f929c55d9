package hubspot

// Record is a CRM object as returned by the v3 objects API: an id plus a
// bag of string properties.
type Record struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
	CreatedAt  string            `json:"createdAt,omitempty"`
	UpdatedAt  string            `json:"updatedAt,omitempty"`
}

// Prop returns a property value, or the empty string when absent.
func (r *Record) Prop(name string) string {
	return r.Properties[name]
}

// Page is one page of records with an optional cursor to the next.
type Page struct {
	Results []Record `json:"results"`
	Paging  *Paging  `json:"paging,omitempty"`
}

// NextAfter returns the cursor for the next page, or "" on the last page.
func (p *Page) NextAfter() string {
	if p == nil || p.Paging == nil || p.Paging.Next == nil {
		return ""
	}
	return p.Paging.Next.After
}

type Paging struct {
	Next *PagingNext `json:"next,omitempty"`
}

type PagingNext struct {
	After string `json:"after"`
}

// ListOptions control paginated listing.
type ListOptions struct {
	Limit      int
	After      string
	Properties []string
}

// SearchRequest is the body of a v3 search call.
type SearchRequest struct {
	Query        string        `json:"query,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	After        string        `json:"after,omitempty"`
	Properties   []string      `json:"properties,omitempty"`
	FilterGroups []FilterGroup `json:"filterGroups,omitempty"`
	Sorts        []Sort        `json:"sorts,omitempty"`
}

type FilterGroup struct {
	Filters []Filter `json:"filters"`
}

type Filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type Sort struct {
	PropertyName string `json:"propertyName"`
	Direction    string `json:"direction"`
}

// Pipeline is a deal pipeline with its ordered stages.
type Pipeline struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	DisplayOrder int             `json:"displayOrder"`
	Stages       []PipelineStage `json:"stages"`
}

type PipelineStage struct {
	ID           string            `json:"id"`
	Label        string            `json:"label"`
	DisplayOrder int               `json:"displayOrder"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// PortalInfo describes the authenticated HubSpot portal.
type PortalInfo struct {
	PortalID int64  `json:"portalId"`
	TimeZone string `json:"timeZone"`
	Currency string `json:"currency"`
}

// Owner is a HubSpot user that can own CRM records.
type Owner struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	UserID    int64  `json:"userId,omitempty"`
}

// Association is a typed link between two CRM objects.
type Association struct {
	FromObjectType string
	FromObjectID   string
	ToObjectType   string
	ToObjectID     string
	Types          []AssociationType
}

type AssociationType struct {
	Category string `json:"category"`
	TypeID   int    `json:"typeId"`
	Label    string `json:"label,omitempty"`
}
