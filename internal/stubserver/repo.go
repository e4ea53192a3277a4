// Package stubserver is a small local stand-in for the remote directory
// service, used for development and integration testing of the CLI. It
// implements the same wire contract: login returning a token, a paged
// user listing, and per-record update/delete.
package stubserver

import (
	"sort"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/Zeldris69240/reqres-app/internal/client/models"
)

// account is a login credential the stub accepts.
type account struct {
	Email        string
	PasswordHash []byte
}

// UserRepo is an in-memory user collection guarded by a mutex; unlike the
// CLI cache it is hit from concurrent HTTP handlers.
type UserRepo struct {
	mu       sync.RWMutex
	users    map[int]models.User
	accounts map[string]account
}

// NewUserRepo returns a repo seeded with the given users and one account
// per user (password "pistol", bcrypt-hashed, matching the well-known
// demo dataset credentials).
func NewUserRepo(seed []models.User) *UserRepo {
	r := &UserRepo{
		users:    make(map[int]models.User, len(seed)),
		accounts: make(map[string]account),
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("pistol"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	for _, u := range seed {
		r.users[u.ID] = u
		r.accounts[u.Email] = account{Email: u.Email, PasswordHash: hash}
	}
	return r
}

// CheckPassword verifies the credentials against the seeded accounts.
func (r *UserRepo) CheckPassword(email, password string) bool {
	r.mu.RLock()
	acc, ok := r.accounts[email]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword(acc.PasswordHash, []byte(password)) == nil
}

// List returns all users ordered by identifier.
func (r *UserRepo) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update replaces the editable fields of the record with the given id.
func (r *UserRepo) Update(id int, firstName, lastName, email string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return false
	}
	u.FirstName = firstName
	u.LastName = lastName
	u.Email = email
	r.users[id] = u
	return true
}

// Delete removes the record with the given id, reporting whether it existed.
func (r *UserRepo) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.users[id]
	delete(r.users, id)
	return ok
}

// SeedUsers is the default page-1 dataset.
func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, FirstName: "George", LastName: "Bluth", Email: "george.bluth@reqres.in", Avatar: "https://reqres.in/img/faces/1-image.jpg"},
		{ID: 2, FirstName: "Janet", LastName: "Weaver", Email: "janet.weaver@reqres.in", Avatar: "https://reqres.in/img/faces/2-image.jpg"},
		{ID: 3, FirstName: "Emma", LastName: "Wong", Email: "emma.wong@reqres.in", Avatar: "https://reqres.in/img/faces/3-image.jpg"},
		{ID: 4, FirstName: "Eve", LastName: "Holt", Email: "eve.holt@reqres.in", Avatar: "https://reqres.in/img/faces/4-image.jpg"},
		{ID: 5, FirstName: "Charles", LastName: "Morris", Email: "charles.morris@reqres.in", Avatar: "https://reqres.in/img/faces/5-image.jpg"},
		{ID: 6, FirstName: "Tracey", LastName: "Ramos", Email: "tracey.ramos@reqres.in", Avatar: "https://reqres.in/img/faces/6-image.jpg"},
	}
}
