package store

import "github.com/lenteradev69/barbershits/internal/domain"

// DefaultServices is the menu a fresh install starts with.
func DefaultServices() []domain.Service {
	return []domain.Service{
		{ID: "s1", Name: "Regular Haircut", Price: 50000, Category: "Haircut"},
		{ID: "s2", Name: "Beard Trim", Price: 30000, Category: "Grooming"},
		{ID: "s3", Name: "Hair Coloring", Price: 150000, Category: "Color"},
		{ID: "s4", Name: "Shave", Price: 40000, Category: "Grooming"},
		{ID: "s5", Name: "Kids Haircut", Price: 35000, Category: "Haircut"},
	}
}

// DefaultProducts is the retail shelf a fresh install starts with.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Pomade", Price: 85000, Stock: 15, Category: "Hair Products"},
		{ID: "p2", Name: "Beard Oil", Price: 70000, Stock: 8, Category: "Grooming"},
		{ID: "p3", Name: "Shampoo", Price: 60000, Stock: 12, Category: "Hair Products"},
	}
}

// DefaultCustomers is sample data for demos, written only when seeding
// is enabled.
func DefaultCustomers() []domain.Customer {
	return []domain.Customer{
		{
			ID:     "c1",
			Name:   "Budi Santoso",
			Phone:  "081234567890",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=budi",
			Visits: 12,
		},
		{
			ID:     "c2",
			Name:   "Agus Wijaya",
			Phone:  "082345678901",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=agus",
			Visits: 7,
		},
		{
			ID:     "c3",
			Name:   "Dewi Lestari",
			Phone:  "083456789012",
			Avatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=dewi",
			Visits: 3,
		},
	}
}
