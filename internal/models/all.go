package models

import "encoding/json"

type exporter interface {
	Export() (json.RawMessage, error)
}

// Registry is a map of all resources to their model. It is used in the
// export endpoint to loop over all resources on the instance.
var Registry = map[string]exporter{
	"Category": Category{},
	"Contact":  Contact{},
}
