package domain

// Money is an amount in whole COP units.
type Money int64

type ProductID int

type Category string

const (
	CategoryClassicPizza   Category = "classic-pizza"
	CategorySpecialtyPizza Category = "specialty-pizza"
	CategoryPortion        Category = "portion"
	CategoryBeverage       Category = "beverage"
	CategoryPromotion      Category = "composite-promotion"
)

var Categories = []Category{
	CategoryClassicPizza,
	CategorySpecialtyPizza,
	CategoryPortion,
	CategoryBeverage,
	CategoryPromotion,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) IsPizza() bool {
	return c == CategoryClassicPizza || c == CategorySpecialtyPizza
}

const (
	TagVegetarian = "vegetarian"
	TagSpicy      = "spicy"
	TagPopular    = "popular"
	TagGourmet    = "gourmet"
	TagChefChoice = "chef-choice"
)

// HalfAndHalfID identifies the pseudo-product that opens a split pizza.
const HalfAndHalfID ProductID = 50

type Product struct {
	ID          ProductID `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	BasePrice   Money     `json:"base_price" bson:"base_price"`
	Category    Category  `json:"category" bson:"category"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`

	// set only for composite-promotion products
	Promotion       PromotionKind `json:"promotion,omitempty" bson:"promotion,omitempty"`
	DiscountPercent int           `json:"discount_percent,omitempty" bson:"discount_percent,omitempty"`
}

func (p Product) IsHalfAndHalf() bool {
	return p.ID == HalfAndHalfID
}

// IsPizza reports whether the product is a real, orderable pizza.
func (p Product) IsPizza() bool {
	return p.Category.IsPizza() && !p.IsHalfAndHalf()
}

func (p Product) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
