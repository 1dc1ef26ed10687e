package domain

// LineItem is one priced entry of a cart. Pricing inputs are frozen when the
// item is created; only Quantity changes afterwards.
type LineItem struct {
	Product   Product `json:"product"`
	Quantity  int     `json:"quantity"`
	Options   Options `json:"options"`
	UnitPrice Money   `json:"unit_price"`
	Label     string  `json:"label"`
}

func (li LineItem) Extended() Money {
	return li.UnitPrice * Money(li.Quantity)
}

func (li LineItem) Clone() LineItem {
	out := li
	out.Options = li.Options.Clone()
	if li.Product.Tags != nil {
		out.Product.Tags = append([]string(nil), li.Product.Tags...)
	}
	return out
}
