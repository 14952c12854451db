package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/surhub/startup-weekend/internal/model"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         model.Role
	Avatar       string
	PasswordHash []byte
	CreatedAt    time.Time
}

type UserRepository interface {
	List(ctx context.Context) ([]*User, error)
	Get(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID string) error
}

// seedPassword is the credential for the two demo accounts
// (john@example.com and admin@example.com).
const seedPassword = "password"

type memoryUserRepository struct {
	mu    sync.RWMutex
	users []*User
}

// NewMemoryUserRepository seeds the fixed user records. Only the two demo
// accounts carry a credential hash; the rest exist for the admin listing.
func NewMemoryUserRepository() UserRepository {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	return &memoryUserRepository{users: []*User{
		{
			ID:           "1",
			Name:         "John Doe",
			Email:        "john@example.com",
			Role:         model.RoleUser,
			Avatar:       "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			PasswordHash: hash,
			CreatedAt:    time.Date(2023, time.February, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "2",
			Name:         "Admin User",
			Email:        "admin@example.com",
			Role:         model.RoleAdmin,
			Avatar:       "https://images.pexels.com/photos/1181686/pexels-photo-1181686.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			PasswordHash: hash,
			CreatedAt:    time.Date(2023, time.January, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Name:      "Sarah Johnson",
			Email:     "sarah@example.com",
			Role:      model.RoleUser,
			Avatar:    "https://images.pexels.com/photos/774909/pexels-photo-774909.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CreatedAt: time.Date(2023, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "4",
			Name:      "Michael Chen",
			Email:     "michael@example.com",
			Role:      model.RoleUser,
			Avatar:    "https://images.pexels.com/photos/1681010/pexels-photo-1681010.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CreatedAt: time.Date(2023, time.March, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "5",
			Name:      "Aisha Patel",
			Email:     "aisha@example.com",
			Role:      model.RoleUser,
			Avatar:    "https://images.pexels.com/photos/415829/pexels-photo-415829.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
			CreatedAt: time.Date(2023, time.March, 12, 0, 0, 0, 0, time.UTC),
		},
	}}
}

func (m *memoryUserRepository) List(_ context.Context) ([]*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]*User, 0, len(m.users))
	for _, u := range m.users {
		copied := *u
		users = append(users, &copied)
	}
	return users, nil
}

func (m *memoryUserRepository) Get(_ context.Context, userID string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.ID == userID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryUserRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends without any uniqueness checking; records live only for the
// current process.
func (m *memoryUserRepository) Create(_ context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *user
	m.users = append(m.users, &copied)
	return nil
}

// Delete removes the record when present and reports success either way.
func (m *memoryUserRepository) Delete(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, u := range m.users {
		if u.ID == userID {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}
