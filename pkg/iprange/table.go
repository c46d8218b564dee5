package iprange

import "net/netip"

// Range is one network of a published range list together with the opaque
// metadata that followed it on its row.
type Range struct {
	Network    netip.Prefix
	Descriptor string
}

// Line renders the range the way it appeared in the source list.
func (r Range) Line() string {
	if r.Descriptor == "" {
		return r.Network.String()
	}
	return r.Network.String() + "," + r.Descriptor
}

// Table is an ordered range list. Lookups return the first containing range.
type Table []Range

// Find scans the table in order and returns the first range containing ip.
// "Not found" is reported through ok, never as an error.
func (t Table) Find(ip netip.Addr) (Range, bool) {
	if !ip.IsValid() {
		return Range{}, false
	}
	ip = ip.Unmap()
	for _, r := range t {
		if r.Network.Contains(ip) {
			return r, true
		}
	}
	return Range{}, false
}
