package store

import "marketplace-service/internal/models"

// soldOut derives the flag that must hold after every quantity mutation.
func soldOut(quantity int) bool {
	return quantity <= 0
}

// AddProduct assigns the next product id and stores the record. Ids are
// strictly increasing and never reused within a process lifetime.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	p.ID = s.nextProductID
	s.nextProductID++
	p.IsSoldOut = soldOut(p.Quantity)
	s.products = append(s.products, p)
	return p
}

// GetProduct returns a copy of the product with the given id.
func (s *Store) GetProduct(id int) (models.Product, bool) {
	s.productsMu.RLock()
	defer s.productsMu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// UpdateProduct overwrites the mutable fields of a product and recomputes
// the sold-out flag. Original price, description and owner are never
// rewritten by an update.
func (s *Store) UpdateProduct(id int, name, model, category string, discountedPrice float64, quantity int) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Name = name
			s.products[i].Model = model
			s.products[i].Category = category
			s.products[i].DiscountedPrice = discountedPrice
			s.products[i].Quantity = quantity
			s.products[i].IsSoldOut = soldOut(quantity)
			return s.products[i], nil
		}
	}
	return models.Product{}, models.ErrProductNotFound
}

// DeleteProduct removes a product from the catalog.
func (s *Store) DeleteProduct(id int) error {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return models.ErrProductNotFound
}

// ReserveProduct takes one unit of stock for an order. The sold-out check
// and the decrement happen under one lock so concurrent callers can never
// both claim the last unit.
func (s *Store) ReserveProduct(id int) (models.Product, error) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		if s.products[i].Quantity <= 0 {
			return models.Product{}, models.ErrProductSoldOut
		}
		s.products[i].Quantity--
		s.products[i].IsSoldOut = soldOut(s.products[i].Quantity)
		return s.products[i], nil
	}
	return models.Product{}, models.ErrProductNotFound
}

// AdjustStock applies delta to a product's quantity and recomputes the
// sold-out flag. Quantity is not clamped; callers own the sign discipline.
// A missing product reports ok=false and changes nothing.
func (s *Store) AdjustStock(id, delta int) (models.Product, bool) {
	s.productsMu.Lock()
	defer s.productsMu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Quantity += delta
			s.products[i].IsSoldOut = soldOut(s.products[i].Quantity)
			return s.products[i], true
		}
	}
	return models.Product{}, false
}

// Products returns a snapshot of the catalog in insertion order.
func (s *Store) Products() []models.Product {
	s.productsMu.RLock()
	defer s.productsMu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}
