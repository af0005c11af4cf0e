// Package mockdata holds the static demo dataset used when the document
// store is unreachable or returns nothing. Products follow the Northwind
// sample database.
package mockdata

import (
	"time"

	"github.com/shopspring/decimal"

	"shopdesk/internal/domain"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Products returns the demo catalog in a fixed order.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:   "products/1-A",
			Name: "Chai",
			AlternativeNames: map[string]string{
				"en": "Chai", "es": "Té Chai", "fr": "Thé Chai", "de": "Chai-Tee", "it": "Tè Chai",
			},
			Category:      "Beverages",
			Price:         price("18"),
			Description:   "A fragrant blend of black tea and warming spices, brewed strong and served with milk.",
			Supplier:      "Exotic Liquids",
			StockQuantity: 39,
		},
		{
			ID:   "products/2-A",
			Name: "Chang",
			AlternativeNames: map[string]string{
				"en": "Chang", "es": "Cerveza Chang", "fr": "Bière Chang", "de": "Chang-Bier", "it": "Birra Chang",
			},
			Category:      "Beverages",
			Price:         price("19"),
			Description:   "A crisp Thai lager with a light body and clean finish, best served ice cold.",
			Supplier:      "Exotic Liquids",
			StockQuantity: 17,
		},
		{
			ID:   "products/3-A",
			Name: "Aniseed Syrup",
			AlternativeNames: map[string]string{
				"en": "Aniseed Syrup", "es": "Jarabe de Anís", "fr": "Sirop d'Anis", "de": "Anissirup", "it": "Sciroppo di Anice",
			},
			Category:      "Condiments",
			Price:         price("10"),
			Description:   "Sweet licorice-flavored syrup for desserts, cocktails and traditional pastries.",
			Supplier:      "Exotic Liquids",
			StockQuantity: 13,
		},
		{
			ID:   "products/4-A",
			Name: "Chef Anton's Cajun Seasoning",
			AlternativeNames: map[string]string{
				"en": "Chef Anton's Cajun Seasoning", "es": "Condimento Cajún del Chef Anton",
				"fr": "Assaisonnement Cajun du Chef Anton", "de": "Chef Antons Cajun-Gewürz", "it": "Condimento Cajun dello Chef Anton",
			},
			Category:      "Condiments",
			Price:         price("22"),
			Description:   "A bold Louisiana spice mix with paprika, cayenne and garlic for blackened dishes.",
			Supplier:      "New Orleans Cajun Delights",
			StockQuantity: 53,
		},
		{
			ID:   "products/6-A",
			Name: "Grandma's Boysenberry Spread",
			AlternativeNames: map[string]string{
				"en": "Grandma's Boysenberry Spread", "es": "Mermelada de Zarzamora de la Abuela",
				"fr": "Confiture de Mûres de Grand-mère", "de": "Großmutters Boysenbeeren-Aufstrich", "it": "Marmellata di More della Nonna",
			},
			Category:      "Condiments",
			Price:         price("25"),
			Description:   "Slow-cooked boysenberry preserve made to a family recipe with whole fruit.",
			Supplier:      "Grandma Kelly's Homestead",
			StockQuantity: 120,
		},
		{
			ID:   "products/7-A",
			Name: "Uncle Bob's Organic Dried Pears",
			AlternativeNames: map[string]string{
				"en": "Uncle Bob's Organic Dried Pears", "es": "Peras Secas Orgánicas del Tío Bob",
				"fr": "Poires Séchées Bio de l'Oncle Bob", "de": "Onkel Bobs Bio-Trockenbirnen", "it": "Pere Secche Biologiche dello Zio Bob",
			},
			Category:      "Produce",
			Price:         price("30"),
			Description:   "Naturally sweet organic pears, sun-dried and free of added sugar or sulfites.",
			Supplier:      "Grandma Kelly's Homestead",
			StockQuantity: 15,
		},
		{
			ID:   "products/8-A",
			Name: "Northwoods Cranberry Sauce",
			AlternativeNames: map[string]string{
				"en": "Northwoods Cranberry Sauce", "es": "Salsa de Arándanos Northwoods",
				"fr": "Sauce aux Canneberges Northwoods", "de": "Northwoods Preiselbeersauce", "it": "Salsa di Mirtilli Northwoods",
			},
			Category:      "Condiments",
			Price:         price("40"),
			Description:   "Tart whole-berry cranberry sauce simmered with orange zest and a hint of clove.",
			Supplier:      "Grandma Kelly's Homestead",
			StockQuantity: 6,
		},
		{
			ID:   "products/14-A",
			Name: "Tofu",
			AlternativeNames: map[string]string{
				"en": "Tofu", "es": "Tofu", "fr": "Tofu", "de": "Tofu", "it": "Tofu",
			},
			Category:      "Produce",
			Price:         price("23.25"),
			Description:   "Firm soybean curd with a delicate flavor, suited to stir-fries and grilling.",
			Supplier:      "Mayumi's",
			StockQuantity: 35,
		},
		{
			ID:   "products/24-A",
			Name: "Guaraná Fantástica",
			AlternativeNames: map[string]string{
				"en": "Guaraná Fantástica", "es": "Guaraná Fantástica", "fr": "Guaraná Fantástica",
				"de": "Guaraná Fantástica", "it": "Guaraná Fantástica",
			},
			Category:      "Beverages",
			Price:         price("4.5"),
			Description:   "A sparkling Brazilian soft drink made from guaraná berries, lightly sweet.",
			Supplier:      "Refrescos Americanas LTDA",
			StockQuantity: 0,
		},
	}
}

// Tickets returns demo helpdesk tickets. One ticket ships without a
// summary so the local summarizer fallback has something to do.
func Tickets() []domain.HelpdeskTicket {
	return []domain.HelpdeskTicket{
		{
			ID:           "tickets/101",
			Title:        "Order arrived with damaged packaging",
			Summary:      "Customer received order with crushed outer box; contents intact but requests replacement packaging for gifting.",
			CustomerName: "Maria Anders",
			Priority:     domain.PriorityMedium,
			Status:       domain.TicketOpen,
			CreatedAt:    day("2026-08-11"),
			UpdatedAt:    day("2026-08-12"),
			OrderID:      "ORD-10248",
			NeedsSales:   false,
			Tags:         []string{"shipping", "packaging"},
			Conversation: []domain.ConversationMessage{
				{ID: "m1", Sender: "customer", SenderName: "Maria Anders", Content: "My order arrived today but the box was crushed on one side. The jars inside look fine. It was meant as a gift, can I get replacement packaging?", Timestamp: day("2026-08-11"), MessageType: "text"},
				{ID: "m2", Sender: "agent", SenderName: "Support", Content: "Sorry about that! We can ship a replacement gift box today at no charge.", Timestamp: day("2026-08-12"), MessageType: "text"},
			},
		},
		{
			ID:            "tickets/102",
			Title:         "Bulk pricing for restaurant supply",
			Summary:       "Restaurant owner asks about volume discounts on beverages and condiments for a standing weekly order.",
			CustomerName:  "Thomas Hardy",
			Priority:      domain.PriorityHigh,
			Status:        domain.TicketInProgress,
			CreatedAt:     day("2026-08-18"),
			UpdatedAt:     day("2026-08-20"),
			NeedsSales:    true,
			SalesAssigned: "employees/5-A",
			Tags:          []string{"sales", "bulk-order"},
			Conversation: []domain.ConversationMessage{
				{ID: "m1", Sender: "customer", SenderName: "Thomas Hardy", Content: "We run a restaurant and would like a standing weekly order of Chai and Cajun Seasoning. Do you offer volume pricing?", Timestamp: day("2026-08-18"), MessageType: "text"},
				{ID: "m2", Sender: "system", SenderName: "System", Content: "Sales support recommended for this conversation.", Timestamp: day("2026-08-18"), MessageType: "system_note"},
			},
		},
		{
			ID:           "tickets/103",
			Title:        "Where is my cranberry sauce order?",
			Summary:      "",
			CustomerName: "Christina Berglund",
			Priority:     domain.PriorityLow,
			Status:       domain.TicketOpen,
			CreatedAt:    day("2026-08-24"),
			UpdatedAt:    day("2026-08-24"),
			OrderID:      "ORD-10253",
			NeedsSales:   false,
			Tags:         []string{"shipping"},
			Conversation: []domain.ConversationMessage{
				{ID: "m1", Sender: "customer", SenderName: "Christina Berglund", Content: "I ordered two jars of Northwoods Cranberry Sauce last week. The tracking page has not updated since Monday. Could you check where my parcel is?", Timestamp: day("2026-08-24"), MessageType: "text"},
				{ID: "m2", Sender: "agent", SenderName: "Support", Content: "The carrier reports a sorting delay. Your parcel should arrive within two days.", Timestamp: day("2026-08-24"), MessageType: "text"},
			},
		},
		{
			ID:           "tickets/104",
			Title:        "Allergen information for Aniseed Syrup",
			Summary:      "Customer asks whether Aniseed Syrup is produced in a facility that handles tree nuts.",
			CustomerName: "Frédérique Citeaux",
			Priority:     domain.PriorityMedium,
			Status:       domain.TicketResolved,
			CreatedAt:    day("2026-07-30"),
			UpdatedAt:    day("2026-08-02"),
			NeedsSales:   false,
			Tags:         []string{"product-info", "allergens"},
			Conversation: []domain.ConversationMessage{
				{ID: "m1", Sender: "customer", SenderName: "Frédérique Citeaux", Content: "Is the Aniseed Syrup bottled in a facility that also processes tree nuts?", Timestamp: day("2026-07-30"), MessageType: "text"},
				{ID: "m2", Sender: "agent", SenderName: "Support", Content: "No, the supplier's facility is nut free. Full allergen sheets are available on request.", Timestamp: day("2026-08-01"), MessageType: "text"},
			},
		},
	}
}
