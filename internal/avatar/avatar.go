// Package avatar resolves opaque avatar references into something a
// renderer can act on. Resolution is pure and never fails: anything that
// cannot be understood degrades to the default placeholder or to an
// opaque external locator.
package avatar

import (
	"strconv"
	"strings"
)

// ResourceScheme marks references to bundled image resources,
// e.g. "resource://avatars/3".
const ResourceScheme = "resource:"

// Kind classifies a resolved avatar reference.
type Kind int

const (
	// KindDefault means no usable reference: render the placeholder.
	KindDefault Kind = iota
	// KindResource means a bundled resource identified by ResourceID.
	KindResource
	// KindExternal means an opaque external locator in URI.
	KindExternal
)

// Resolved is the outcome of resolving one avatar reference.
type Resolved struct {
	Kind       Kind
	ResourceID int
	URI        string
}

// Resolve classifies ref.
//
// Empty references resolve to the default placeholder. A reference with
// the resource scheme whose final path segment parses as an integer
// resolves to that bundled resource. Everything else, including a
// resource-scheme reference with a non-numeric tail, is passed through
// verbatim as an external locator.
func Resolve(ref string) Resolved {
	if ref == "" {
		return Resolved{Kind: KindDefault}
	}

	if strings.HasPrefix(ref, ResourceScheme) {
		tail := strings.TrimPrefix(ref, ResourceScheme)
		if idx := strings.LastIndex(tail, "/"); idx >= 0 {
			tail = tail[idx+1:]
		}
		if id, err := strconv.Atoi(tail); err == nil {
			return Resolved{Kind: KindResource, ResourceID: id}
		}
	}

	return Resolved{Kind: KindExternal, URI: ref}
}

// ResourceRef builds a reference to a bundled resource id.
func ResourceRef(id int) string {
	return ResourceScheme + "//avatars/" + strconv.Itoa(id)
}
