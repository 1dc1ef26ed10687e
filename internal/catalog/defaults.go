package catalog

import "github.com/Beka01247/forno-storefront/internal/domain"

// Product ids of the promotion entries.
const (
	TwoForOnePersonalID domain.ProductID = 201
	LargeHalfOffID      domain.ProductID = 202
	PortionsComboID     domain.ProductID = 203
)

var defaultProducts = []domain.Product{
	// classic
	{ID: 1, Name: "Margherita", Description: "Salsa de tomate San Marzano, mozzarella fior di latte, albahaca fresca, aceite de oliva virgen extra.", BasePrice: 32000, Category: domain.CategoryClassicPizza, Tags: []string{domain.TagVegetarian}},
	{ID: 2, Name: "Pepperoni", Description: "Salsa de tomate, mozzarella, doble porción de pepperoni crujiente.", BasePrice: 35000, Category: domain.CategoryClassicPizza, Tags: []string{domain.TagPopular}},
	{ID: 3, Name: "Cuatro Quesos", Description: "Mozzarella, gorgonzola, parmesano reggiano, provolone, miel picante.", BasePrice: 38000, Category: domain.CategoryClassicPizza, Tags: []string{domain.TagVegetarian}},
	{ID: 4, Name: "Hawaiana Artesanal", Description: "Piña asada, jamón serrano, mozzarella, salsa de tomate.", BasePrice: 35000, Category: domain.CategoryClassicPizza},
	{ID: 11, Name: "Carbonara", Description: "Base blanca, panceta, queso pecorino, yema de huevo, pimienta negra.", BasePrice: 36000, Category: domain.CategoryClassicPizza},
	{ID: 12, Name: "Caprese", Description: "Tomates frescos, mozzarella de búfala, albahaca, aceite de oliva, balsámico.", BasePrice: 34000, Category: domain.CategoryClassicPizza, Tags: []string{domain.TagVegetarian}},
	{ID: domain.HalfAndHalfID, Name: "Mitad de Cada Uno", Description: "Escoge 2 pizzas diferentes y lleva mitad de cada una.", BasePrice: 0, Category: domain.CategoryClassicPizza, Tags: []string{domain.TagPopular}},

	// specialty
	{ID: 5, Name: "Trufa y Hongos", Description: "Crema de trufa, mix de hongos silvestres, mozzarella, aceite de trufa blanca.", BasePrice: 42000, Category: domain.CategorySpecialtyPizza, Tags: []string{domain.TagGourmet, domain.TagVegetarian}},
	{ID: 6, Name: "Burrata y Prosciutto", Description: "Base blanca, prosciutto di Parma, burrata fresca entera, rúcula, tomates cherry.", BasePrice: 44000, Category: domain.CategorySpecialtyPizza, Tags: []string{domain.TagChefChoice}},
	{ID: 7, Name: "Diavola Picante", Description: "Salami picante, 'nduja calabresa, chiles frescos, miel.", BasePrice: 40000, Category: domain.CategorySpecialtyPizza, Tags: []string{domain.TagSpicy}},
	{ID: 13, Name: "Rúcula y Parmesano", Description: "Base blanca, rúcula fresca, virutas de parmesano, tomates asados, piñones.", BasePrice: 41000, Category: domain.CategorySpecialtyPizza, Tags: []string{domain.TagVegetarian, domain.TagGourmet}},
	{ID: 14, Name: "BBQ Ahumada", Description: "Carne ahumada, cebolla roja, cilantro, salsa BBQ artesanal.", BasePrice: 43000, Category: domain.CategorySpecialtyPizza, Tags: []string{domain.TagPopular}},
	{ID: 15, Name: "Camarones al Ajillo", Description: "Base blanca, camarones al ajillo, limón, ajo tostado, perejil.", BasePrice: 45000, Category: domain.CategorySpecialtyPizza, Tags: []string{domain.TagChefChoice}},

	// portions
	{ID: 101, Name: "Porción Margherita", Description: "1 Porción de Margherita crujiente.", BasePrice: 8000, Category: domain.CategoryPortion, Tags: []string{domain.TagVegetarian}},
	{ID: 102, Name: "Porción Pepperoni", Description: "1 Porción de Pepperoni con doble queso.", BasePrice: 9000, Category: domain.CategoryPortion, Tags: []string{domain.TagPopular}},
	{ID: 103, Name: "Porción Cuatro Quesos", Description: "1 Porción gourmet de 4 quesos.", BasePrice: 10000, Category: domain.CategoryPortion, Tags: []string{domain.TagVegetarian}},
	{ID: 104, Name: "Porción Hawaiana", Description: "1 Porción de Hawaiana Artesanal.", BasePrice: 9000, Category: domain.CategoryPortion},
	{ID: 105, Name: "Porción BBQ", Description: "1 Porción de BBQ Ahumada.", BasePrice: 11000, Category: domain.CategoryPortion},
	{ID: 106, Name: "Porción Diavola", Description: "1 Porción picante Diavola.", BasePrice: 10500, Category: domain.CategoryPortion, Tags: []string{domain.TagSpicy}},

	// beverages
	{ID: 8, Name: "Limonada Casera", Description: "Limones frescos, menta y un toque de jengibre.", BasePrice: 13000, Category: domain.CategoryBeverage},
	{ID: 9, Name: "Cerveza Artesanal IPA", Description: "Cervecería local, notas cítricas.", BasePrice: 14000, Category: domain.CategoryBeverage},
	{ID: 10, Name: "Vino Tinto Malbec", Description: "Copa de la casa.", BasePrice: 15000, Category: domain.CategoryBeverage},
	{ID: 16, Name: "Agua Mineral con Gas", Description: "Refrescante y pura, con burbujas naturales.", BasePrice: 8000, Category: domain.CategoryBeverage},
	{ID: 17, Name: "Refresco Natural", Description: "Jugo fresco de frutas tropicales del día.", BasePrice: 10000, Category: domain.CategoryBeverage},
	{ID: 18, Name: "Vino Blanco Sauvignon Blanc", Description: "Copa de blanco, fresco y afrutado.", BasePrice: 13000, Category: domain.CategoryBeverage},
	{ID: 19, Name: "Cerveza Lager Premium", Description: "Cerveza clara, suave y refrescante.", BasePrice: 12000, Category: domain.CategoryBeverage},
	{ID: 20, Name: "Gaseosa Premium", Description: "Bebida carbonatada gourmet de importación.", BasePrice: 9000, Category: domain.CategoryBeverage},

	// promotions
	{ID: TwoForOnePersonalID, Name: "2x1 en Pizzas Personales", Description: "Selecciona 2 pizzas clásicas tamaño personal.", BasePrice: 16000, Category: domain.CategoryPromotion, Tags: []string{domain.TagPopular}, Promotion: domain.PromotionTwoForOnePersonal, DiscountPercent: 50},
	{ID: LargeHalfOffID, Name: "Pizza Grande -50%", Description: "Selecciona cualquier pizza en tamaño grande.", BasePrice: 26000, Category: domain.CategoryPromotion, Tags: []string{domain.TagPopular}, Promotion: domain.PromotionLargeHalfOff, DiscountPercent: 50},
	{ID: PortionsComboID, Name: "3 Porciones + Bebida Gratis", Description: "Selecciona 3 porciones y 1 bebida (gratis).", BasePrice: 21000, Category: domain.CategoryPromotion, Promotion: domain.PromotionPortionsCombo, DiscountPercent: 15},
}

// Default returns the house menu.
func Default() *Catalog {
	c, err := New(defaultProducts)
	if err != nil {
		panic(err)
	}
	return c
}
