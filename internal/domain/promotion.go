package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type PromotionKind string

const (
	PromotionTwoForOnePersonal PromotionKind = "two-for-one-personal"
	PromotionLargeHalfOff      PromotionKind = "large-half-off"
	PromotionPortionsCombo     PromotionKind = "portions-combo"
)

func (k PromotionKind) Valid() bool {
	switch k {
	case PromotionTwoForOnePersonal, PromotionLargeHalfOff, PromotionPortionsCombo:
		return true
	}
	return false
}

// PromotionSelection is the closed set of promotion choices a customer can
// make. Each variant carries only the fields its price rule needs.
type PromotionSelection interface {
	Kind() PromotionKind
	clone() PromotionSelection
}

// TwoForOnePersonal is two classic pizzas at personal size for a fixed price.
type TwoForOnePersonal struct {
	First  ProductID `json:"first"`
	Second ProductID `json:"second"`
	Base   BaseType  `json:"base,omitempty"`
}

func (TwoForOnePersonal) Kind() PromotionKind { return PromotionTwoForOnePersonal }

func (p TwoForOnePersonal) clone() PromotionSelection { return p }

// LargeHalfOff discounts a large pizza, whole or split. Exactly one of Pizza
// and Split is set.
type LargeHalfOff struct {
	Pizza ProductID         `json:"pizza,omitempty"`
	Split *SplitComposition `json:"split,omitempty"`
	Base  BaseType          `json:"base,omitempty"`
}

func (LargeHalfOff) Kind() PromotionKind { return PromotionLargeHalfOff }

func (p LargeHalfOff) clone() PromotionSelection {
	if p.Split != nil {
		split := *p.Split
		p.Split = &split
	}
	return p
}

// PortionsCombo is three portions plus a free beverage for a fixed price.
type PortionsCombo struct {
	Portions [3]ProductID `json:"portions"`
	Beverage ProductID    `json:"beverage"`
}

func (PortionsCombo) Kind() PromotionKind { return PromotionPortionsCombo }

func (p PortionsCombo) clone() PromotionSelection { return p }

type promotionEnvelope struct {
	Kind PromotionKind `json:"kind"`
}

type twoForOneWire struct {
	Kind PromotionKind `json:"kind"`
	TwoForOnePersonal
}

type largeHalfOffWire struct {
	Kind PromotionKind `json:"kind"`
	LargeHalfOff
}

type portionsComboWire struct {
	Kind PromotionKind `json:"kind"`
	PortionsCombo
}

func MarshalPromotion(p PromotionSelection) ([]byte, error) {
	switch v := p.(type) {
	case TwoForOnePersonal:
		return json.Marshal(twoForOneWire{Kind: v.Kind(), TwoForOnePersonal: v})
	case LargeHalfOff:
		return json.Marshal(largeHalfOffWire{Kind: v.Kind(), LargeHalfOff: v})
	case PortionsCombo:
		return json.Marshal(portionsComboWire{Kind: v.Kind(), PortionsCombo: v})
	default:
		return nil, fmt.Errorf("unsupported promotion %T", p)
	}
}

// UnmarshalPromotion decodes a promotion envelope, rejecting unknown kinds and
// fields that do not belong to the kind.
func UnmarshalPromotion(data []byte) (PromotionSelection, error) {
	var env promotionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, NewValidationErrorf("promotion", "malformed promotion: %v", err)
	}

	switch env.Kind {
	case PromotionTwoForOnePersonal:
		var w twoForOneWire
		if err := decodeStrict(data, &w); err != nil {
			return nil, err
		}
		return w.TwoForOnePersonal, nil
	case PromotionLargeHalfOff:
		var w largeHalfOffWire
		if err := decodeStrict(data, &w); err != nil {
			return nil, err
		}
		return w.LargeHalfOff, nil
	case PromotionPortionsCombo:
		var w portionsComboWire
		if err := decodeStrict(data, &w); err != nil {
			return nil, err
		}
		return w.PortionsCombo, nil
	default:
		return nil, NewValidationErrorf("promotion", "unknown promotion kind %q", env.Kind)
	}
}

func decodeStrict(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return NewValidationErrorf("promotion", "malformed promotion: %v", err)
	}
	return nil
}
