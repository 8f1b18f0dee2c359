package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/devfolio/internal/store"
	"github.com/jonathan/devfolio/internal/types"
)

func newTestService(t *testing.T, mutate func(doc *types.Document)) (*Service, *store.Store) {
	t.Helper()
	doc := types.DefaultDocument()
	if mutate != nil {
		mutate(doc)
	}
	s := store.New(doc, nil, nil)
	return NewService(s, nil), s
}

func TestCheckPassword(t *testing.T) {
	doc := &types.Document{AdminPassword: "secret"}

	tests := []struct {
		name      string
		candidate string
		wantErr   bool
	}{
		{name: "exact match", candidate: "secret"},
		{name: "case differs", candidate: "Secret", wantErr: true},
		{name: "trailing space", candidate: "secret ", wantErr: true},
		{name: "empty", candidate: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPassword(doc, tt.candidate)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &ErrInvalidPassword{}, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckRecovery(t *testing.T) {
	doc := &types.Document{SecurityAnswer: "Blue"}

	tests := []struct {
		name        string
		answer      string
		newPassword string
		wantErr     error
	}{
		{name: "trim and case fold", answer: "  blue ", newPassword: "pw"},
		{name: "exact", answer: "Blue", newPassword: "pw"},
		{name: "wrong answer", answer: "red", newPassword: "pw", wantErr: &ErrIncorrectAnswer{}},
		{name: "missing answer", answer: "", newPassword: "pw", wantErr: &ErrMissingFields{}},
		{name: "missing password", answer: "blue", newPassword: "", wantErr: &ErrMissingFields{}},
		{name: "missing checked before compare", answer: "", newPassword: "", wantErr: &ErrMissingFields{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRecovery(doc, tt.answer, tt.newPassword)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCheckRecovery_StoredAnswerTrimmed(t *testing.T) {
	doc := &types.Document{SecurityAnswer: "  DevFolio  "}
	assert.NoError(t, CheckRecovery(doc, "devfolio", "newpw"))
}

func TestErrMissingFields_Message(t *testing.T) {
	err := &ErrMissingFields{Fields: []string{"answer", "new_password"}}
	assert.Equal(t, "please fill in all fields: answer, new_password", err.Error())
	assert.Equal(t, "please fill in all fields", (&ErrMissingFields{}).Error())
}

func TestService_Login(t *testing.T) {
	svc, s := newTestService(t, func(doc *types.Document) { doc.AdminPassword = "secret" })
	ctx := context.Background()

	err := svc.Login(ctx, "Secret")
	assert.IsType(t, &ErrInvalidPassword{}, err)
	assert.False(t, s.State().IsAuthenticated)

	require.NoError(t, svc.Login(ctx, "secret"))
	assert.True(t, s.State().IsAuthenticated)
	assert.True(t, svc.Authenticated())

	svc.Logout(ctx)
	assert.False(t, svc.Authenticated())
}

func TestService_Recover(t *testing.T) {
	svc, s := newTestService(t, func(doc *types.Document) {
		doc.AdminPassword = "old"
		doc.SecurityAnswer = "Blue"
	})
	ctx := context.Background()

	err := svc.Recover(ctx, "red", "newpass")
	assert.IsType(t, &ErrIncorrectAnswer{}, err)
	assert.Equal(t, "old", s.State().AdminPassword)

	require.NoError(t, svc.Recover(ctx, "  blue ", "newpass"))
	assert.Equal(t, "newpass", s.State().AdminPassword)
	assert.False(t, s.State().IsAuthenticated, "recovery must not log the caller in")

	require.NoError(t, svc.Login(ctx, "newpass"))
}

func TestService_ChangePassword(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "abc")
	require.Error(t, err)
	assert.IsType(t, &ErrPasswordTooShort{}, err)
	assert.Equal(t, types.DefaultAdminPassword, s.State().AdminPassword)

	require.NoError(t, svc.ChangePassword(ctx, "abcd"))
	assert.Equal(t, "abcd", s.State().AdminPassword)
}

func TestService_UpdateSecuritySettings(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	err := svc.UpdateSecuritySettings(ctx, "Pet?", "")
	require.Error(t, err)
	missing, ok := err.(*ErrMissingFields)
	require.True(t, ok)
	assert.Equal(t, []string{"answer"}, missing.Fields)
	assert.Equal(t, types.DefaultSecurityQuestion, svc.SecurityQuestion())

	require.NoError(t, svc.UpdateSecuritySettings(ctx, "Pet?", "Rex"))
	assert.Equal(t, "Pet?", svc.SecurityQuestion())
	assert.Equal(t, "Rex", s.State().SecurityAnswer)
}

func TestService_ChangePassword_CountsCharacters(t *testing.T) {
	svc, s := newTestService(t, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "two runes four bytes", password: "äö", wantErr: &ErrPasswordTooShort{}},
		{name: "empty", password: "", wantErr: &ErrMissingFields{}},
		{name: "four runes", password: "äöüß"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ChangePassword(ctx, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.IsType(t, tt.wantErr, err)
				assert.NotEqual(t, tt.password, s.State().AdminPassword)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.password, s.State().AdminPassword)
		})
	}
}

func TestService_Login_EmptyPassword(t *testing.T) {
	svc, s := newTestService(t, nil)

	err := svc.Login(context.Background(), "")
	missing, ok := err.(*ErrMissingFields)
	require.True(t, ok, "got %T", err)
	assert.Equal(t, []string{"password"}, missing.Fields)
	assert.False(t, s.State().IsAuthenticated)
}

// readCountingStore fails the test if the service checks state outside the
// dispatch that acts on it.
type readCountingStore struct {
	*store.Store
	reads int
}

func (r *readCountingStore) Read(fn func(doc *types.Document)) {
	r.reads++
	r.Store.Read(fn)
}

func TestService_CheckAndDispatchInOneStep(t *testing.T) {
	doc := types.DefaultDocument()
	doc.AdminPassword = "secret"
	doc.SecurityAnswer = "Blue"
	rs := &readCountingStore{Store: store.New(doc, nil, nil)}
	svc := NewService(rs, nil)
	ctx := context.Background()

	require.NoError(t, svc.Recover(ctx, "blue", "rotated"))
	assert.IsType(t, &ErrInvalidPassword{}, svc.Login(ctx, "secret"))
	require.NoError(t, svc.Login(ctx, "rotated"))

	assert.Zero(t, rs.reads)
	assert.True(t, rs.State().IsAuthenticated)
}
