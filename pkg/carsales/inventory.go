package carsales

import "verdict/pkg/facts"

// DefaultInventory returns the demo lot: the stock a fetch_inventory action
// would pull from the dealer management system.
func DefaultInventory() []Car {
	return []Car{
		{ID: "toy-cam-1", Price: 24000, Make: "Toyota", Model: "Camry"},
		{ID: "hon-acc-2", Price: 26000, Make: "Honda", Model: "Accord"},
		{ID: "for-mus-3", Price: 30000, Make: "Ford", Model: "Mustang"},
		{ID: "che-mal-4", Price: 22000, Make: "Chevrolet", Model: "Malibu"},
		{ID: "nis-alt-5", Price: 25000, Make: "Nissan", Model: "Altima"},
		{ID: "tes-mod3-6", Price: 35000, Make: "Tesla", Model: "Model 3"},
		{ID: "bmw-320i-7", Price: 40000, Make: "BMW", Model: "320i"},
		{ID: "aud-a4-8", Price: 42000, Make: "Audi", Model: "A4"},
		{ID: "mer-c300-9", Price: 45000, Make: "Mercedes-Benz", Model: "C300"},
		{ID: "vol-s60-10", Price: 38000, Make: "Volvo", Model: "S60"},
		// Italian cars
		{ID: "fer-488-11", Price: 250000, Make: "Ferrari", Model: "488"},
		{ID: "lam-hur-12", Price: 300000, Make: "Lamborghini", Model: "Huracan"},
		{ID: "mas-ghibli-13", Price: 80000, Make: "Maserati", Model: "Ghibli"},
		// Cheap cars
		{ID: "kia-rio-14", Price: 15000, Make: "Kia", Model: "Rio"},
		{ID: "hyu-elantra-15", Price: 16000, Make: "Hyundai", Model: "Elantra"},
		{ID: "for-fiesta-16", Price: 14000, Make: "Ford", Model: "Fiesta"},
		{ID: "niss-versa-17", Price: 13000, Make: "Nissan", Model: "Versa"},
		{ID: "che-spark-18", Price: 12000, Make: "Chevrolet", Model: "Spark"},
		// Old cars
		{ID: "toy-corolla-19", Price: 10000, Make: "Toyota", Model: "Corolla"},
		{ID: "hon-civic-20", Price: 11000, Make: "Honda", Model: "Civic"},
		// Collectibles
		{ID: "for-mustang-66", Price: 55000, Make: "Ford", Model: "Mustang"},
		{ID: "che-corvette-59", Price: 60000, Make: "Chevrolet", Model: "Corvette"},
	}
}

// LoadInventory asserts the default lot into a store, the way a completed
// fetch_inventory action would.
func LoadInventory(s *facts.Store) error {
	for _, c := range DefaultInventory() {
		if err := AddCar(s, c); err != nil {
			return err
		}
	}
	return nil
}
