package entity

// DeliveryType represents how a shop fulfils its orders.
type DeliveryType string

const (
	// DeliveryTypeInHouse indicates delivery by the shop's own staff.
	DeliveryTypeInHouse DeliveryType = "in_house"
	// DeliveryTypeExternal indicates delivery by marketplace deliverymen.
	DeliveryTypeExternal DeliveryType = "external"
	// DeliveryTypePickup indicates customer pickup, no delivery at all.
	DeliveryTypePickup DeliveryType = "pickup"
)

// String returns the string representation of the DeliveryType.
func (d DeliveryType) String() string {
	return string(d)
}

// IsValid checks if the DeliveryType is a valid value.
func (d DeliveryType) IsValid() bool {
	switch d {
	case DeliveryTypeInHouse, DeliveryTypeExternal, DeliveryTypePickup:
		return true
	default:
		return false
	}
}

// DeliveryTime is the composite delivery window of a shop, persisted as a
// single structured value. Once any sub-field has been set the triple stays
// well-formed: partial updates never clear the fields they do not mention.
type DeliveryTime struct {
	From string `json:"from"`
	To   string `json:"to"`
	Type string `json:"type"`
}

// DeliveryTimePatch is a partial delivery-time update. Nil fields are
// "not mentioned" and leave the corresponding position untouched.
type DeliveryTimePatch struct {
	From *string
	To   *string
	Type *string
}

// IsZero reports whether the patch mentions no field at all.
func (p DeliveryTimePatch) IsZero() bool {
	return p.From == nil && p.To == nil && p.Type == nil
}

// Merge returns a new DeliveryTime with the patch's present fields
// overwriting the receiver's positions and absent fields carried over.
// It is a pure function: create merges onto the zero value, update merges
// onto the persisted value, both through this single code path.
func (dt DeliveryTime) Merge(patch DeliveryTimePatch) DeliveryTime {
	merged := dt
	if patch.From != nil {
		merged.From = *patch.From
	}
	if patch.To != nil {
		merged.To = *patch.To
	}
	if patch.Type != nil {
		merged.Type = *patch.Type
	}

	return merged
}
