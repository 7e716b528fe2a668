package config

import (
	"log"
	"math"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/models"
)

// Seed populates the store with the default dataset. Idempotent:
// existing rows are left untouched.
func Seed(db *gorm.DB) error {
	if err := seedUsers(db); err != nil {
		return err
	}
	if err := seedCatalog(db); err != nil {
		return err
	}
	if err := seedOrders(db); err != nil {
		return err
	}
	log.Println("🌱 Seed data loaded")
	return nil
}

type seedUser struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Country  models.Country
}

var defaultUsers = []seedUser{
	{"Nick Fury", "nick@fury.com", "admin123", models.RoleAdmin, models.CountryIndia},
	{"Captain Marvel", "captain@marvel.com", "manager123", models.RoleManager, models.CountryIndia},
	{"Captain America", "captain@america.com", "manager123", models.RoleManager, models.CountryAmerica},
	{"Thanos", "thanos@india.com", "member123", models.RoleMember, models.CountryIndia},
	{"Thor", "thor@india.com", "member123", models.RoleMember, models.CountryIndia},
	{"Travis", "travis@america.com", "member123", models.RoleMember, models.CountryAmerica},
}

func seedUsers(db *gorm.DB) error {
	for _, u := range defaultUsers {
		var count int64
		db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count)
		if count > 0 {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Name:         u.Name,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         u.Role,
			Country:      u.Country,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	return nil
}

type seedMenuItem struct {
	Name        string
	Description string
	Price       float64
}

var defaultCatalog = []struct {
	Restaurant models.Restaurant
	Menu       []seedMenuItem
}{
	{
		Restaurant: models.Restaurant{
			Name:        "Spice Garden",
			Description: "Authentic Indian cuisine with modern twist",
			Country:     models.CountryIndia,
		},
		Menu: []seedMenuItem{
			{"Butter Chicken", "Creamy tomato butter sauce", 12.99},
			{"Biryani", "Fragrant rice with spices", 10.99},
			{"Paneer Tikka", "Grilled cottage cheese", 8.99},
		},
	},
	{
		Restaurant: models.Restaurant{
			Name:        "Burger Hub",
			Description: "American style burgers and fries",
			Country:     models.CountryAmerica,
		},
		Menu: []seedMenuItem{
			{"Classic Cheeseburger", "Beef patty with cheese", 8.99},
			{"French Fries", "Crispy golden fries", 3.99},
			{"Chicken Wings", "Spicy buffalo wings", 9.99},
		},
	},
	{
		Restaurant: models.Restaurant{
			Name:        "Curry House",
			Description: "Traditional Indian curries and breads",
			Country:     models.CountryIndia,
		},
		Menu: []seedMenuItem{
			{"Chicken Curry", "Spicy chicken curry", 11.99},
			{"Garlic Naan", "Garlic flavored bread", 2.99},
			{"Samosa", "Fried pastry with filling", 4.99},
		},
	},
	{
		Restaurant: models.Restaurant{
			Name:        "Pizza Palace",
			Description: "Italian pizzas with American toppings",
			Country:     models.CountryAmerica,
		},
		Menu: []seedMenuItem{
			{"Margherita Pizza", "Classic tomato and cheese", 11.99},
			{"Pepperoni Pizza", "Pepperoni and cheese", 13.99},
			{"Garlic Bread", "Toasted garlic bread", 4.99},
		},
	},
}

type seedOrderLine struct {
	Item     string
	Quantity int
}

var sampleOrders = []struct {
	Email string
	Lines []seedOrderLine
}{
	{"thanos@india.com", []seedOrderLine{{"Butter Chicken", 2}, {"Biryani", 1}}},
	{"travis@america.com", []seedOrderLine{{"Classic Cheeseburger", 1}, {"French Fries", 2}}},
}

// seedOrders creates the sample orders once; a store that already
// holds any order is left alone
func seedOrders(db *gorm.DB) error {
	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count > 0 {
		return nil
	}

	for _, sample := range sampleOrders {
		var user models.User
		if err := db.Where("email = ?", sample.Email).First(&user).Error; err != nil {
			return err
		}

		var total float64
		var orderItems []models.OrderItem
		for _, line := range sample.Lines {
			var item models.MenuItem
			if err := db.Where("name = ?", line.Item).First(&item).Error; err != nil {
				return err
			}
			total += item.Price * float64(line.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
			})
		}

		order := models.Order{
			Status:      models.StatusPending,
			TotalAmount: math.Round(total*100) / 100,
			UserID:      user.ID,
			Items:       orderItems,
		}
		if err := db.Create(&order).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: user.ID,
			Note:      "Order placed",
		}
		if err := db.Create(&history).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedCatalog(db *gorm.DB) error {
	for _, entry := range defaultCatalog {
		restaurant := entry.Restaurant
		res := db.Where("name = ?", restaurant.Name).FirstOrCreate(&restaurant)
		if res.Error != nil {
			return res.Error
		}
		for _, m := range entry.Menu {
			item := models.MenuItem{
				RestaurantID: restaurant.ID,
				Name:         m.Name,
				Description:  m.Description,
				Price:        m.Price,
			}
			if err := db.Where("restaurant_id = ? AND name = ?", restaurant.ID, m.Name).
				FirstOrCreate(&item).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
