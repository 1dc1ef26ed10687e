package domain

import (
	"bytes"
	"encoding/json"
)

type Size string

const (
	SizePersonal Size = "personal"
	SizeMedium   Size = "medium"
	SizeLarge    Size = "large"
)

var Sizes = []Size{SizePersonal, SizeMedium, SizeLarge}

func (s Size) Valid() bool {
	return s == SizePersonal || s == SizeMedium || s == SizeLarge
}

// BaseType is descriptive only and never changes a price.
type BaseType string

const (
	BaseTomato     BaseType = "tomato"
	BaseWhiteCream BaseType = "white-cream"
	BaseBBQ        BaseType = "bbq"
)

// Valid accepts the empty base, meaning the house default.
func (b BaseType) Valid() bool {
	switch b {
	case "", BaseTomato, BaseWhiteCream, BaseBBQ:
		return true
	}
	return false
}

type SplitComposition struct {
	First  ProductID `json:"first"`
	Second ProductID `json:"second"`
}

// Options is the customization snapshot used to price a line item.
type Options struct {
	Size      Size
	Base      BaseType
	Split     *SplitComposition
	Promotion PromotionSelection
}

func (o Options) Clone() Options {
	out := Options{Size: o.Size, Base: o.Base}
	if o.Split != nil {
		split := *o.Split
		out.Split = &split
	}
	if o.Promotion != nil {
		out.Promotion = o.Promotion.clone()
	}
	return out
}

type optionsWire struct {
	Size      Size              `json:"size,omitempty"`
	Base      BaseType          `json:"base,omitempty"`
	Split     *SplitComposition `json:"split,omitempty"`
	Promotion json.RawMessage   `json:"promotion,omitempty"`
}

func (o Options) MarshalJSON() ([]byte, error) {
	w := optionsWire{Size: o.Size, Base: o.Base, Split: o.Split}
	if o.Promotion != nil {
		raw, err := MarshalPromotion(o.Promotion)
		if err != nil {
			return nil, err
		}
		w.Promotion = raw
	}
	return json.Marshal(w)
}

func (o *Options) UnmarshalJSON(data []byte) error {
	var w optionsWire
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return NewValidationErrorf("options", "malformed options: %v", err)
	}

	*o = Options{Size: w.Size, Base: w.Base, Split: w.Split}
	if len(w.Promotion) > 0 && !bytes.Equal(w.Promotion, []byte("null")) {
		promo, err := UnmarshalPromotion(w.Promotion)
		if err != nil {
			return err
		}
		o.Promotion = promo
	}
	return nil
}
