package service

import (
	"context"
	"sort"
	"time"

	"github.com/roadready/rental-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Identity / role stubs
// ---------------------------------------------------------------------------

type stubIdentityRepo struct {
	byUsername   map[string]*domain.Identity
	createErr    error
	addToRoleErr error
	creates      int
	deleted      []string
}

func newStubIdentityRepo() *stubIdentityRepo {
	return &stubIdentityRepo{byUsername: make(map[string]*domain.Identity)}
}

func cloneIdentity(i *domain.Identity) *domain.Identity {
	c := *i
	c.Roles = append([]string(nil), i.Roles...)
	return &c
}

func (r *stubIdentityRepo) FindByUsername(_ context.Context, username string) (*domain.Identity, error) {
	i, ok := r.byUsername[username]
	if !ok {
		return nil, domain.ErrIdentityNotFound
	}
	return cloneIdentity(i), nil
}

func (r *stubIdentityRepo) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	for _, i := range r.byUsername {
		if i.Email == email {
			return cloneIdentity(i), nil
		}
	}
	return nil, domain.ErrIdentityNotFound
}

func (r *stubIdentityRepo) Create(_ context.Context, identity *domain.Identity) error {
	r.creates++
	if r.createErr != nil {
		return r.createErr
	}
	if _, exists := r.byUsername[identity.Username]; exists {
		return domain.ErrUserExists
	}
	r.byUsername[identity.Username] = cloneIdentity(identity)
	return nil
}

func (r *stubIdentityRepo) AddToRole(_ context.Context, username, role string) error {
	if r.addToRoleErr != nil {
		return r.addToRoleErr
	}
	i, ok := r.byUsername[username]
	if !ok {
		return domain.ErrIdentityNotFound
	}
	if !i.HasRole(role) {
		i.Roles = append(i.Roles, role)
	}
	return nil
}

func (r *stubIdentityRepo) Delete(_ context.Context, username string) error {
	if _, ok := r.byUsername[username]; !ok {
		return domain.ErrIdentityNotFound
	}
	delete(r.byUsername, username)
	r.deleted = append(r.deleted, username)
	return nil
}

type stubRoleRepo struct {
	roles     map[string]bool
	created   []string
	createErr error
}

func newStubRoleRepo(existing ...string) *stubRoleRepo {
	r := &stubRoleRepo{roles: make(map[string]bool)}
	for _, name := range existing {
		r.roles[name] = true
	}
	return r
}

func (r *stubRoleRepo) Exists(_ context.Context, name string) (bool, error) {
	return r.roles[name], nil
}

func (r *stubRoleRepo) Create(_ context.Context, name string) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.roles[name] = true
	r.created = append(r.created, name)
	return nil
}

type stubDenylist struct {
	revoked map[string]time.Duration
	err     error
}

func newStubDenylist() *stubDenylist {
	return &stubDenylist{revoked: make(map[string]time.Duration)}
}

func (d *stubDenylist) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if d.err != nil {
		return d.err
	}
	d.revoked[tokenID] = ttl
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := d.revoked[tokenID]
	return ok, d.err
}

// ---------------------------------------------------------------------------
// Entity stubs
// ---------------------------------------------------------------------------

// memStore is a minimal id-keyed table shared by the entity stubs.
type memStore[T any] struct {
	rows   map[int64]T
	nextID int64
	err    error
}

func newMemStore[T any]() *memStore[T] {
	return &memStore[T]{rows: make(map[int64]T)}
}

func (m *memStore[T]) list(keep func(T) bool) ([]T, error) {
	if m.err != nil {
		return nil, m.err
	}
	ids := make([]int64, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []T
	for _, id := range ids {
		if keep == nil || keep(m.rows[id]) {
			out = append(out, m.rows[id])
		}
	}
	return out, nil
}

func (m *memStore[T]) find(id int64, notFound error) (*T, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[id]
	if !ok {
		return nil, notFound
	}
	return &row, nil
}

func (m *memStore[T]) insert(row T, setID func(*T, int64)) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.nextID++
	setID(&row, m.nextID)
	m.rows[m.nextID] = row
	return m.nextID, nil
}

func (m *memStore[T]) replace(id int64, row T, notFound error) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return notFound
	}
	m.rows[id] = row
	return nil
}

func (m *memStore[T]) remove(id int64, notFound error) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.rows[id]; !ok {
		return notFound
	}
	delete(m.rows, id)
	return nil
}

type stubUserRepo struct{ *memStore[domain.User] }

func newStubUserRepo() *stubUserRepo { return &stubUserRepo{newMemStore[domain.User]()} }

func (r *stubUserRepo) List(context.Context) ([]domain.User, error) { return r.list(nil) }
func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	return r.find(id, domain.ErrUserNotFound)
}
func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (int64, error) {
	return r.insert(*u, func(u *domain.User, id int64) { u.ID = id })
}
func (r *stubUserRepo) Update(_ context.Context, u *domain.User) error {
	existing, err := r.find(u.ID, domain.ErrUserNotFound)
	if err != nil {
		return err
	}
	next := *u
	next.PasswordHash = existing.PasswordHash
	next.CreatedAt = existing.CreatedAt
	return r.replace(u.ID, next, domain.ErrUserNotFound)
}
func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	return r.remove(id, domain.ErrUserNotFound)
}

// failingUserRepo rejects every insert.
type failingUserRepo struct {
	*stubUserRepo
	err error
}

func (r failingUserRepo) Create(context.Context, *domain.User) (int64, error) { return 0, r.err }

type stubCarRepo struct{ *memStore[domain.Car] }

func newStubCarRepo() *stubCarRepo { return &stubCarRepo{newMemStore[domain.Car]()} }

func (r *stubCarRepo) List(context.Context) ([]domain.Car, error) { return r.list(nil) }
func (r *stubCarRepo) FindByID(_ context.Context, id int64) (*domain.Car, error) {
	return r.find(id, domain.ErrCarNotFound)
}
func (r *stubCarRepo) Create(_ context.Context, c *domain.Car) (int64, error) {
	return r.insert(*c, func(c *domain.Car, id int64) { c.ID = id })
}
func (r *stubCarRepo) Update(_ context.Context, c *domain.Car) error {
	return r.replace(c.ID, *c, domain.ErrCarNotFound)
}
func (r *stubCarRepo) Delete(_ context.Context, id int64) error {
	return r.remove(id, domain.ErrCarNotFound)
}

type stubReservationRepo struct{ *memStore[domain.Reservation] }

func newStubReservationRepo() *stubReservationRepo {
	return &stubReservationRepo{newMemStore[domain.Reservation]()}
}

func (r *stubReservationRepo) List(context.Context) ([]domain.Reservation, error) {
	return r.list(nil)
}
func (r *stubReservationRepo) ListByCar(_ context.Context, carID int64) ([]domain.Reservation, error) {
	return r.list(func(x domain.Reservation) bool { return x.CarID == carID })
}
func (r *stubReservationRepo) FindByID(_ context.Context, id int64) (*domain.Reservation, error) {
	return r.find(id, domain.ErrReservationNotFound)
}
func (r *stubReservationRepo) Create(_ context.Context, x *domain.Reservation) (int64, error) {
	return r.insert(*x, func(x *domain.Reservation, id int64) { x.ID = id })
}
func (r *stubReservationRepo) Update(_ context.Context, x *domain.Reservation) error {
	return r.replace(x.ID, *x, domain.ErrReservationNotFound)
}
func (r *stubReservationRepo) Delete(_ context.Context, id int64) error {
	return r.remove(id, domain.ErrReservationNotFound)
}

type stubReviewRepo struct{ *memStore[domain.Review] }

func newStubReviewRepo() *stubReviewRepo { return &stubReviewRepo{newMemStore[domain.Review]()} }

func (r *stubReviewRepo) List(context.Context) ([]domain.Review, error) { return r.list(nil) }
func (r *stubReviewRepo) ListByCar(_ context.Context, carID int64) ([]domain.Review, error) {
	return r.list(func(x domain.Review) bool { return x.CarID == carID })
}
func (r *stubReviewRepo) FindByID(_ context.Context, id int64) (*domain.Review, error) {
	return r.find(id, domain.ErrReviewNotFound)
}
func (r *stubReviewRepo) Create(_ context.Context, x *domain.Review) (int64, error) {
	return r.insert(*x, func(x *domain.Review, id int64) { x.ID = id })
}
func (r *stubReviewRepo) Update(_ context.Context, x *domain.Review) error {
	return r.replace(x.ID, *x, domain.ErrReviewNotFound)
}
func (r *stubReviewRepo) Delete(_ context.Context, id int64) error {
	return r.remove(id, domain.ErrReviewNotFound)
}

type stubPaymentRepo struct{ *memStore[domain.Payment] }

func newStubPaymentRepo() *stubPaymentRepo { return &stubPaymentRepo{newMemStore[domain.Payment]()} }

func (r *stubPaymentRepo) List(context.Context) ([]domain.Payment, error) { return r.list(nil) }
func (r *stubPaymentRepo) ListByUser(_ context.Context, userID int64) ([]domain.Payment, error) {
	return r.list(func(x domain.Payment) bool { return x.UserID == userID })
}
func (r *stubPaymentRepo) FindByID(_ context.Context, id int64) (*domain.Payment, error) {
	return r.find(id, domain.ErrPaymentNotFound)
}
func (r *stubPaymentRepo) Create(_ context.Context, x *domain.Payment) (int64, error) {
	return r.insert(*x, func(x *domain.Payment, id int64) { x.ID = id })
}
func (r *stubPaymentRepo) Update(_ context.Context, x *domain.Payment) error {
	return r.replace(x.ID, *x, domain.ErrPaymentNotFound)
}
func (r *stubPaymentRepo) Delete(_ context.Context, id int64) error {
	return r.remove(id, domain.ErrPaymentNotFound)
}
