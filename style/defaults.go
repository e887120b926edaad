package style

import (
	"fmt"
)

// Defaults holds the user-agent default value for every property of the
// catalog. Clients may override individual defaults, e.g. from a
// configuration file.
//
// The default of "display" depends on the element kind of an entity; an
// override of "display" replaces the kind-specific defaults altogether.
type Defaults struct {
	values          [NumProperties]Property
	displayOverride bool
}

// NewDefaults creates a set of defaults initialized from the catalog.
func NewDefaults() *Defaults {
	d := &Defaults{}
	for _, desc := range catalog {
		d.values[desc.ID] = desc.Default
	}
	return d
}

// Override replaces the default for a property key. Unknown keys are
// rejected.
func (d *Defaults) Override(key string, value Property) error {
	id, ok := Lookup(key)
	if !ok {
		return fmt.Errorf("cannot override default for unknown property '%s'", key)
	}
	d.values[id] = value
	if id == PDisplay {
		d.displayOverride = true
	}
	tracer().Debugf("default for %s overridden with '%s'", key, value)
	return nil
}

// Get returns the default value of a property for an element of a given kind.
func (d *Defaults) Get(id PropertyID, kind string) Property {
	if id == PDisplay && !d.displayOverride {
		return DisplayForElementKind(kind)
	}
	return d.values[id]
}

// DisplayForElementKind returns the default `display` property for an
// element kind. Element kinds are named after HTML tags, with a couple of
// widget names added.
func DisplayForElementKind(kind string) Property {
	switch kind {
	case "head", "script", "style", "template", "title", "meta", "link":
		return "none"
	case "p":
		return "block-inline"
	case "", "html", "aside", "body", "div", "h1", "h2", "h3",
		"h4", "h5", "h6", "ol", "section", "ul", "li", "nav",
		"header", "footer", "main", "article", "form", "vstack",
		"hstack", "zstack", "window", "list":
		return "block"
	case "i", "b", "em", "a", "span", "strong", "label", "button",
		"input", "textbox", "checkbox", "icon", "img":
		return "inline"
	case "table":
		return "table"
	}
	return "block"
}
