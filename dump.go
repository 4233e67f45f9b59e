package watchable

import "github.com/davecgh/go-spew/spew"

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// Dump returns a human readable rendering of the serialized content
func (c *Container) Dump() string {
	return dumpConfig.Sdump(c.Serialize())
}
