package bufrw

import "fmt"

// Version identifies a release of this library.
type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CurrentVersion reports the library version.
func CurrentVersion() Version {
	return Version{Major: 1, Minor: 0, Patch: 1}
}
