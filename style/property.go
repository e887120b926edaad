package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value for a style property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// IsTrue interprets a property as a flag. "true", "1" and "yes" are true,
// everything else is false.
func (p Property) IsTrue() bool {
	switch strings.ToLower(strings.TrimSpace(string(p))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// Normalize trims surrounding whitespace. Values are otherwise kept as
// written; font family names are case-sensitive.
func Normalize(v string) Property {
	return Property(strings.TrimSpace(v))
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// IsCompound returns true for shortcut properties which SplitCompoundProperty
// is able to expand.
func IsCompound(key string) bool {
	switch key {
	case "border-radius", "overflow", "child-space", "inset":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//
//	SplitCompoundProperty("child-space", "3px 4px")
//
// will return
//
//	"child-top"    => "3px"
//	"child-right"  => "4px"
//	"child-bottom" => "3px"
//	"child-left"   => "4px"
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "child-space":
		return feazeCompound4("child", "", fourDirs, fields)
	case "inset":
		return feazeCompound4("", "", fourDirs, fields)
	case "overflow":
		if len(fields) == 0 || len(fields) > 2 {
			return nil, fmt.Errorf("expecting 1-2 values for overflow")
		}
		y := fields[len(fields)-1]
		return []KeyValue{
			{"overflow-x", Property(fields[0])},
			{"overflow-y", Property(y)},
		}, nil
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// Distribution of 1 to 4 values onto four sides follows the usual CSS logic:
// top, right, bottom, left, with missing values copied from the opposite side.
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", p(pre, suf, "*"))
	}
	pick := [4]int{0, 0, 0, 0}
	switch l {
	case 2:
		pick = [4]int{0, 1, 0, 1}
	case 3:
		pick = [4]int{0, 1, 2, 1}
	case 4:
		pick = [4]int{0, 1, 2, 3}
	}
	r := make([]KeyValue, 4)
	for i := range r {
		r[i] = KeyValue{p(pre, suf, dirs[i]), Property(fields[pick[i]])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	switch {
	case prefix == "" && suffix == "":
		return tag
	case suffix == "":
		return prefix + "-" + tag
	case prefix == "":
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}
