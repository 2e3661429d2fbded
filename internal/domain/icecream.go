package domain

// IceCreamName is the closed set of flavours served by the ice cream lookup.
type IceCreamName string

const (
	Strawberry IceCreamName = "strawberry"
	Blueberry  IceCreamName = "blueberry"
	Pistachio  IceCreamName = "pistachio"
)

// IceCreamNames lists every member of IceCreamName in declaration order.
func IceCreamNames() []IceCreamName {
	return []IceCreamName{Strawberry, Blueberry, Pistachio}
}

// IsValid reports whether n is a member of the set.
func (n IceCreamName) IsValid() bool {
	switch n {
	case Strawberry, Blueberry, Pistachio:
		return true
	}
	return false
}
