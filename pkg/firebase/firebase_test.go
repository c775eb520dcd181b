package firebase

import (
	"context"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestProfileFromToken(t *testing.T) {
	identity := ProfileFromToken(&auth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"name":           "Alice",
			"email":          "alice@example.com",
			"picture":        "https://img.example.com/alice.png",
			"email_verified": true,
		},
	})
	assert.Equal(t, "uid-1", identity.Subject)
	assert.Equal(t, "Alice", identity.Name)
	assert.Equal(t, "alice@example.com", identity.Email)
	assert.Equal(t, "https://img.example.com/alice.png", identity.Image)
	assert.Empty(t, identity.Username)

	bare := ProfileFromToken(&auth.Token{UID: "uid-2"})
	assert.Equal(t, "uid-2", bare.Subject)
	assert.Empty(t, bare.Email)
}

func TestInitFirebaseMissingCredentials(t *testing.T) {
	_, err := InitFirebase(context.Background(), "", zap.NewNop())
	assert.Error(t, err)

	_, err = InitFirebase(context.Background(), "/nonexistent/credentials.json", zap.NewNop())
	assert.ErrorContains(t, err, "not found")
}
