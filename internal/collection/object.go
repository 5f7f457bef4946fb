package collection

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Department is one entry of the upstream departments listing.
type Department struct {
	DepartmentID int    `json:"departmentId"`
	DisplayName  string `json:"displayName"`
}

// SearchResult is the upstream search response.
type SearchResult struct {
	Total     int   `json:"total"`
	ObjectIDs []int `json:"objectIDs"`
}

// Object is an upstream object record kept as raw JSON so that every field
// passes through untouched. Only fields replaced with With change.
type Object struct {
	raw json.RawMessage
}

// NewObject wraps raw upstream JSON. The payload must be a JSON object.
func NewObject(raw []byte) (Object, error) {
	if !gjson.ValidBytes(raw) {
		return Object{}, fmt.Errorf("malformed object payload")
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return Object{}, fmt.Errorf("object payload is not a JSON object")
	}
	return Object{raw: append(json.RawMessage(nil), raw...)}, nil
}

// MarshalJSON returns the upstream payload as-is.
func (o Object) MarshalJSON() ([]byte, error) {
	if len(o.raw) == 0 {
		return []byte("null"), nil
	}
	return o.raw, nil
}

// UnmarshalJSON stores the payload without decoding it.
func (o *Object) UnmarshalJSON(data []byte) error {
	obj, err := NewObject(data)
	if err != nil {
		return err
	}
	*o = obj
	return nil
}

// Raw returns the underlying JSON.
func (o Object) Raw() json.RawMessage { return o.raw }

// Get reads any field by gjson path.
func (o Object) Get(path string) gjson.Result {
	return gjson.GetBytes(o.raw, path)
}

// With returns a copy of o with the string field at path set to value.
func (o Object) With(path, value string) (Object, error) {
	raw, err := sjson.SetBytes(append([]byte(nil), o.raw...), path, value)
	if err != nil {
		return o, fmt.Errorf("set %s: %w", path, err)
	}
	return Object{raw: raw}, nil
}

func (o Object) ID() int                   { return int(o.Get("objectID").Int()) }
func (o Object) Title() string             { return o.Get("title").String() }
func (o Object) Culture() string           { return o.Get("culture").String() }
func (o Object) Dynasty() string           { return o.Get("dynasty").String() }
func (o Object) Period() string            { return o.Get("period").String() }
func (o Object) ObjectDate() string        { return o.Get("objectDate").String() }
func (o Object) Medium() string            { return o.Get("medium").String() }
func (o Object) Department() string        { return o.Get("department").String() }
func (o Object) ArtistDisplayName() string { return o.Get("artistDisplayName").String() }
func (o Object) PrimaryImage() string      { return o.Get("primaryImage").String() }
func (o Object) PrimaryImageSmall() string { return o.Get("primaryImageSmall").String() }
func (o Object) ObjectURL() string         { return o.Get("objectURL").String() }

// AdditionalImages lists the extra image URLs of the object.
func (o Object) AdditionalImages() []string {
	var out []string
	o.Get("additionalImages").ForEach(func(_, value gjson.Result) bool {
		if s := value.String(); s != "" {
			out = append(out, s)
		}
		return true
	})
	return out
}
