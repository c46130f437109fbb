package impl

import (
	"context"
	"sync"
	"time"

	"grocer/internal/domain/entity"
	domainerrors "grocer/internal/domain/errors"
	"grocer/internal/domain/repository"
	"grocer/internal/domain/service"

	"github.com/google/uuid"
)

// In-memory fakes standing in for the GORM repositories. They reproduce the
// observable contract of the real implementations: not-found sentinels,
// owner scoping, duplicate-email conflicts and the cart upsert increment.

type fakeUserRepo struct {
	mu    sync.Mutex
	users []*entity.User
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domainerrors.ErrEmailAlreadyRegistered
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users = append(r.users, &clone)

	return nil
}

func (r *fakeUserRepo) List(_ context.Context, limit int) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for i := len(r.users) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.users[i]
		out = append(out, &clone)
	}

	return out, nil
}

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) List(_ context.Context, limit int) ([]*entity.Category, error) {
	if len(r.categories) > limit {
		return r.categories[:limit], nil
	}

	return r.categories, nil
}

func (r *fakeCategoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.categories)), nil
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = uuid.New()
	category.CreatedAt = time.Now().UTC()
	category.UpdatedAt = category.CreatedAt
	clone := *category
	r.categories = append(r.categories, &clone)

	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			updated := *category
			updated.CreatedAt = c.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			r.categories[i] = &updated

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)

			return nil
		}
	}

	return repository.ErrCategoryNotFound
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) List(_ context.Context, categoryID *uuid.UUID, limit int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if categoryID != nil && p.CategoryID != *categoryID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}

	return out, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	product.ID = uuid.New()
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	clone := *product
	r.products = append(r.products, &clone)

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, p := range r.products {
		if p.ID == product.ID {
			updated := *product
			updated.CreatedAt = p.CreatedAt
			updated.UpdatedAt = time.Now().UTC()
			r.products[i] = &updated

			return nil
		}
	}

	return repository.ErrProductNotFound
}

func (r *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)

			return nil
		}
	}

	return repository.ErrProductNotFound
}

type fakeCartRepo struct {
	items    []*entity.CartItem
	clearErr error
}

func (r *fakeCartRepo) ListByUserID(_ context.Context, userID uuid.UUID, limit int) ([]*entity.CartItem, error) {
	out := make([]*entity.CartItem, 0)
	for _, item := range r.items {
		if item.UserID == userID {
			clone := *item
			out = append(out, &clone)
			if len(out) == limit {
				break
			}
		}
	}

	return out, nil
}

func (r *fakeCartRepo) Upsert(_ context.Context, item *entity.CartItem) error {
	for _, existing := range r.items {
		if existing.UserID == item.UserID && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			existing.UpdatedAt = time.Now().UTC()
			*item = *existing

			return nil
		}
	}
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	clone := *item
	r.items = append(r.items, &clone)

	return nil
}

func (r *fakeCartRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	for i, item := range r.items {
		if item.ID == id && item.UserID == userID {
			r.items = append(r.items[:i], r.items[i+1:]...)

			return nil
		}
	}

	return repository.ErrCartItemNotFound
}

func (r *fakeCartRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) error {
	if r.clearErr != nil {
		return r.clearErr
	}
	kept := r.items[:0]
	for _, item := range r.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	r.items = kept

	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.ID = uuid.New()
	order.CreatedAt = time.Now().UTC()
	order.UpdatedAt = order.CreatedAt
	clone := *order
	r.orders = append(r.orders, &clone)

	return nil
}

func (r *fakeOrderRepo) FindByIDForOwner(_ context.Context, id, userID uuid.UUID) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id && o.UserID == userID {
			clone := *o

			return &clone, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			clone := *o

			return &clone, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) ListByUserID(_ context.Context, userID uuid.UUID, limit int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0)
	for i := len(r.orders) - 1; i >= 0 && len(out) < limit; i-- {
		if r.orders[i].UserID == userID {
			clone := *r.orders[i]
			out = append(out, &clone)
		}
	}

	return out, nil
}

func (r *fakeOrderRepo) List(_ context.Context, limit int) ([]*entity.Order, error) {
	out := make([]*entity.Order, 0)
	for i := len(r.orders) - 1; i >= 0 && len(out) < limit; i-- {
		clone := *r.orders[i]
		out = append(out, &clone)
	}

	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus, updatedAt time.Time) error {
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			o.UpdatedAt = updatedAt

			return nil
		}
	}

	return repository.ErrOrderNotFound
}

// fakeFactory hands out the shared fakes so transactional and direct access
// observe the same state.
type fakeFactory struct {
	userRepo     *fakeUserRepo
	categoryRepo *fakeCategoryRepo
	productRepo  *fakeProductRepo
	cartRepo     *fakeCartRepo
	orderRepo    *fakeOrderRepo
}

func (f *fakeFactory) UserRepo() repository.UserRepository         { return f.userRepo }
func (f *fakeFactory) CategoryRepo() repository.CategoryRepository { return f.categoryRepo }
func (f *fakeFactory) ProductRepo() repository.ProductRepository   { return f.productRepo }
func (f *fakeFactory) CartRepo() repository.CartRepository         { return f.cartRepo }
func (f *fakeFactory) OrderRepo() repository.OrderRepository       { return f.orderRepo }

type fakeTxManager struct {
	factory *fakeFactory
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(userID uuid.UUID, _ string, _ entity.Role) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token-" + userID.String(), nil
}

func (s *fakeTokenService) Verify(string) (*service.Claims, error) {
	return nil, nil
}

// capturePublisher records published events for assertion. Publishing happens
// on a background goroutine, so access is mutex-guarded.
type capturePublisher struct {
	mu     sync.Mutex
	events []*service.OrderEvent
}

func (p *capturePublisher) PublishOrderEvent(_ context.Context, event *service.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return nil
}

func (p *capturePublisher) Close() error { return nil }

func (p *capturePublisher) Events() []*service.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.OrderEvent(nil), p.events...)
}
