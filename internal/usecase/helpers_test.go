package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/playfield/tournament-service/internal/domain/user"
	"github.com/playfield/tournament-service/internal/infrastructure/repository/memory"
)

type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n), nil
}

type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (plainHasher) Compare(hash, plaintext string) error {
	if hash != "hashed:"+plaintext {
		return errors.New("password mismatch")
	}
	return nil
}

type staticIssuer struct{}

func (staticIssuer) Issue(principal user.Principal, _ time.Time) (string, error) {
	return "token-" + principal.UserID, nil
}

func seededStore(t *testing.T) *memory.Store {
	t.Helper()

	store := memory.NewStore()
	if err := memory.Seed(store, plainHasher{}.Hash); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store
}

func adminPrincipal() user.Principal {
	return user.Principal{UserID: memory.SeedAdminID, Role: user.RoleAdmin}
}

func managerPrincipal() user.Principal {
	return user.Principal{UserID: memory.SeedManagerID, Role: user.RoleManager}
}
