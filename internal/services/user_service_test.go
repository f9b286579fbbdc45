package services

import (
	"testing"

	"dailybudget/internal/testutil"

	"golang.org/x/crypto/bcrypt"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice", "Alice@Example.com", "secret1")
		testutil.AssertNoError(t, err)

		if user.ID == "" {
			t.Fatal("expected user ID")
		}
		if user.Username != "alice" {
			t.Errorf("expected username alice, got %s", user.Username)
		}
		if user.Email != "alice@example.com" {
			t.Errorf("expected lower-cased email, got %s", user.Email)
		}
		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret1")) != nil {
			t.Error("stored password should be a bcrypt hash of the input")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("dup", "one@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("dup", "two@example.com", "password123")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("first", "same@example.com", "password123")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("second", "SAME@example.com", "password123")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("short_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("bob", "bob@example.com", "12345")
		testutil.AssertAppError(t, err, "WEAK_PASSWORD")
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("  ", "bob@example.com", "password123")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestAuthenticate(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	created := testutil.CreateTestUserWithUsername(t, db, "carol")

	t.Run("valid", func(t *testing.T) {
		user, err := svc.Authenticate("carol", testutil.TestPassword)
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user %s, got %s", created.ID, user.ID)
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		_, err := svc.Authenticate("carol", "wrong-password")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := svc.Authenticate("nobody", testutil.TestPassword)
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})
}

func TestGetUserByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)
	created := testutil.CreateTestUser(t, db)

	user, err := svc.GetUserByID(created.ID)
	testutil.AssertNoError(t, err)
	if user.Username != created.Username {
		t.Errorf("expected %s, got %s", created.Username, user.Username)
	}

	_, err = svc.GetUserByID("not-a-uuid")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")

	_, err = svc.GetUserByID("0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b")
	testutil.AssertAppError(t, err, "USER_NOT_FOUND")
}
