package domain

import "strconv"

const (
	// TagRefPrefix is the namespace of tag references.
	TagRefPrefix = "refs/tags/"
	// ObjectTypeCommit is the git object type a usable tag reference must point to.
	ObjectTypeCommit = "commit"
)

// Release holds the identifiers of a release found or created on the remote.
type Release struct {
	ID        int64
	URL       string
	UploadURL string
}

// ReleaseRequest carries the fields of a create-release call.
type ReleaseRequest struct {
	TagName       string
	Target        string
	Name          string
	Body          string
	Draft         bool
	PreRelease    bool
	GenerateNotes bool
}

// TagRequest carries the fields of a create-tag-object call.
type TagRequest struct {
	Tag     string
	Message string
	Object  string
	Type    string
}

// Reference is a named git reference and the object it points to.
type Reference struct {
	Ref        string
	ObjectType string
	ObjectSHA  string
}

// Output keys, always emitted together.
const (
	OutputID        = "id"
	OutputURL       = "url"
	OutputUploadURL = "upload-url"
	OutputTagSHA    = "tag-sha"
)

// Outputs are the values reported back to the invoking workflow.
type Outputs struct {
	ID        string
	URL       string
	UploadURL string
	TagSHA    string
}

// ReleaseOutputs builds the outputs of the release flow. A zero id is reported as empty.
func ReleaseOutputs(r *Release) Outputs {
	out := Outputs{}
	if r == nil {
		return out
	}
	if r.ID != 0 {
		out.ID = strconv.FormatInt(r.ID, 10)
	}
	out.URL = r.URL
	out.UploadURL = r.UploadURL
	return out
}

// TagOutputs builds the outputs of the tag-only flow.
func TagOutputs(commitSHA string) Outputs {
	return Outputs{TagSHA: commitSHA}
}

// Pairs returns the outputs as ordered key/value pairs.
func (o Outputs) Pairs() [][2]string {
	return [][2]string{
		{OutputID, o.ID},
		{OutputURL, o.URL},
		{OutputUploadURL, o.UploadURL},
		{OutputTagSHA, o.TagSHA},
	}
}
