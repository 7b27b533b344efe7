package usecase_test

import (
	"context"
	"time"

	"github.com/ZachChoo/grocery-inventory/internal/domain"
	"github.com/ZachChoo/grocery-inventory/internal/domain/entity"
)

// In-memory repository fakes for use-case tests.

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*entity.Product)}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, other := range r.products {
		if other.UPC == p.UPC {
			return domain.ErrUPCAlreadyExists
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memProductRepo) GetByUPC(_ context.Context, upc string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.UPC == upc {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		cp := *p
		list = append(list, &cp)
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *memProductRepo) ListLowStock(_ context.Context) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.LowStock() {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type memSaleRepo struct {
	sales map[string]*entity.Sale
}

func newMemSaleRepo() *memSaleRepo {
	return &memSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *memSaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	if s, ok := r.sales[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memSaleRepo) List(_ context.Context, limit, offset int) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for _, s := range r.sales {
		cp := *s
		list = append(list, &cp)
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *memSaleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sales, id)
	return nil
}

func (r *memSaleRepo) ExpiringBetween(_ context.Context, from, to time.Time) ([]entity.ExpiringSale, error) {
	return nil, nil
}

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*entity.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	for _, other := range r.users {
		if other.Username == u.Username {
			return domain.ErrUsernameAlreadyExists
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		cp := *u
		list = append(list, &cp)
	}
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) ManagersWithEmail(_ context.Context) ([]*entity.User, error) {
	var list []*entity.User
	for _, u := range r.users {
		if u.EligibleRecipient() {
			cp := *u
			list = append(list, &cp)
		}
	}
	return list, nil
}
