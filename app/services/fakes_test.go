package services

import (
	"context"
	"sort"
	"strings"

	"github.com/shashiranjanraj/gokart/app/models"
	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/pkg/gateway"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory stand-ins for the Mongo repositories. They mirror the contract
// documented on the interfaces: (nil, nil) on a miss, newest first on lists.

type fakeUserRepo struct {
	users     []*models.User
	createErr error
	findErr   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateKey
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmailAndAnswer(_ context.Context, email, answer string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Answer == answer {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.Password = passwordHash
		}
	}
	return nil
}

type fakeOrderRepo struct {
	orders    []models.Order
	createErr error
	findErr   error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *models.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	order.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *order)
	return nil
}

func (f *fakeOrderRepo) FindByID(_ context.Context, id string) (*models.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.orders {
		if f.orders[i].ID.Hex() == id {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByBuyer(_ context.Context, buyerID string) ([]models.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.Order
	for _, o := range f.orders {
		if o.Buyer.ID.Hex() == buyerID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	out := append([]models.Order(nil), f.orders...)
	sortNewestFirst(out)
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id string, status models.OrderStatus) (*models.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID.Hex() == id {
			f.orders[i].Status = status
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

type fakeCategoryRepo struct {
	categories []models.Category
	createErr  error
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *models.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, c := range f.categories {
		if c.Slug == category.Slug {
			return repositories.ErrDuplicateKey
		}
	}
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *models.Category) error {
	for i := range f.categories {
		if f.categories[i].ID == category.ID {
			f.categories[i] = *category
		}
	}
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range f.categories {
		if f.categories[i].ID.Hex() == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Name == name {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindBySlug(_ context.Context, slug string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].Slug == slug {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id string) (*models.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID.Hex() == id {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) All(_ context.Context) ([]models.Category, error) {
	return append([]models.Category(nil), f.categories...), nil
}

type fakeProductRepo struct {
	products []models.Product
}

func (f *fakeProductRepo) Create(_ context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *models.Product) error {
	for i := range f.products {
		if f.products[i].ID == product.ID {
			f.products[i] = *product
		}
	}
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) (bool, error) {
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindBySlug(_ context.Context, slug string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].Slug == slug {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Latest(_ context.Context, limit int) ([]models.Product, error) {
	out := append([]models.Product(nil), f.products...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeProductRepo) Page(ctx context.Context, page, perPage int) ([]models.Product, error) {
	all, _ := f.Latest(ctx, len(f.products))
	start := (page - 1) * perPage
	if start >= len(all) {
		return nil, nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Filter(_ context.Context, filter repositories.ProductFilter) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if len(filter.CategoryIDs) > 0 {
			match := false
			for _, id := range filter.CategoryIDs {
				if p.Category.Hex() == id {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		if filter.PriceMin != nil && p.Price < *filter.PriceMin {
			continue
		}
		if filter.PriceMax != nil && p.Price > *filter.PriceMax {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Search(_ context.Context, keyword string) ([]models.Product, error) {
	kw := strings.ToLower(keyword)
	var out []models.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), kw) ||
			strings.Contains(strings.ToLower(p.Description), kw) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Related(_ context.Context, productID, categoryID string, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.ID.Hex() != productID && p.Category.Hex() == categoryID && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ByCategory(_ context.Context, categoryID string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if p.Category.Hex() == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeGateway is a scriptable payment gateway double.
type fakeGateway struct {
	token   string
	result  *gateway.Result
	saleErr error

	gotAmount float64
	gotNonce  string
}

func (f *fakeGateway) ClientToken(_ context.Context) (string, error) {
	return f.token, nil
}

func (f *fakeGateway) Sale(_ context.Context, amount float64, nonce string) (*gateway.Result, error) {
	f.gotAmount = amount
	f.gotNonce = nonce
	return f.result, f.saleErr
}
