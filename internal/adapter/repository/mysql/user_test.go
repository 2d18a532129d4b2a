package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "loanflow-backend/internal/domain/user"
	"loanflow-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type userSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	UserID       string         `gorm:"size:32;column:user_id"`
	Name         string         `gorm:"column:name"`
	Email        string         `gorm:"column:email"`
	PasswordHash string         `gorm:"column:password_hash"`
	Role         string         `gorm:"type:text;column:role"` // ← no enum
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

func openUserTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestUserCreateAndLookups(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := id.New()
	u := &domain.User{
		UserID:       uid,
		Name:         "Jane Borrower",
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         domain.RoleCustomer,
	}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	byID, err := repo.GetByUserID(ctx, uid)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if byID.Email != u.Email {
		t.Errorf("unexpected user: %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.UserID != uid {
		t.Errorf("unexpected user: %+v", byEmail)
	}

	if _, err := repo.GetByEmail(ctx, "nobody@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByUserID(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserListByRole(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seed := []userSQLite{
		{UserID: "11111111111111111111111111111111", Name: "A", Email: "a@x.com", Role: "CUSTOMER"},
		{UserID: "22222222222222222222222222222222", Name: "B", Email: "b@x.com", Role: "ADMIN"},
		{UserID: "33333333333333333333333333333333", Name: "C", Email: "c@x.com", Role: "CUSTOMER"},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	customers, err := repo.ListByRole(ctx, domain.RoleCustomer)
	if err != nil {
		t.Fatalf("ListByRole: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("len=%d, want 2", len(customers))
	}
	if customers[0].Name != "A" || customers[1].Name != "C" {
		t.Errorf("unexpected order: %+v", customers)
	}
}

func TestUserGetByUserIDForUpdate(t *testing.T) {
	db := openUserTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	uid := id.New()
	if err := repo.Create(ctx, &domain.User{
		UserID: uid,
		Name:   "Jane Borrower",
		Email:  "lock@example.com",
		Role:   domain.RoleCustomer,
	}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		got, err := NewUserRepository(tx).GetByUserIDForUpdate(ctx, uid)
		if err != nil {
			return err
		}
		if got.UserID != uid {
			t.Fatalf("unexpected user: %+v", got)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("locked read: %v", err)
	}

	if _, err := repo.GetByUserIDForUpdate(ctx, "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
