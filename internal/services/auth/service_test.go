package auth_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"ramacq/internal/domain"
	"ramacq/internal/services/auth"
	"ramacq/internal/store"
)

func newService(t *testing.T) (*auth.Service, string) {
	t.Helper()
	dir := t.TempDir()
	return openService(t, dir), dir
}

func openService(t *testing.T, dir string) *auth.Service {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	userStore, err := store.NewUserStore(dir, logger)
	require.NoError(t, err)
	svc, err := auth.New(userStore, logger)
	require.NoError(t, err)
	return svc
}

func TestNew_SeedsDefaultAccounts(t *testing.T) {
	svc, _ := newService(t)

	users := svc.ListUsers()
	require.Len(t, users, 2)
	require.Equal(t, "admin", users[0].Username)
	require.Equal(t, "investigator", users[1].Username)
	require.True(t, users[0].FullAccess)

	admin, ok := svc.Authenticate("admin", "admin123")
	require.True(t, ok)
	require.Equal(t, "u_admin", admin.ID)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	inv, ok := svc.Authenticate("investigator", "invest123")
	require.True(t, ok)
	require.Equal(t, "u_inv", inv.ID)
	require.Equal(t, domain.RoleInvestigator, inv.Role)
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newService(t)

	wrongPass, ok := svc.Authenticate("admin", "nope")
	require.False(t, ok)

	unknownUser, ok := svc.Authenticate("ghost", "nope")
	require.False(t, ok)

	// Both failure modes return the same zero identity.
	require.Equal(t, wrongPass, unknownUser)
}

func TestUpsertUser_NewWithoutPasswordFails(t *testing.T) {
	svc, _ := newService(t)

	err := svc.UpsertUser(domain.Upsert{Username: "fresh", Role: domain.RoleViewer})
	require.ErrorIs(t, err, domain.ErrPasswordRequired)

	// No partial record was added.
	require.Len(t, svc.ListUsers(), 2)
}

func TestUpsertUser_EmptyUsernameFails(t *testing.T) {
	svc, _ := newService(t)
	err := svc.UpsertUser(domain.Upsert{Username: "   ", Password: "x", Role: domain.RoleViewer})
	require.ErrorIs(t, err, domain.ErrUsernameRequired)
}

func TestUpsertUser_CreateThenAuthenticate(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "worf",
		Name:     "Warrant Officer",
		Role:     domain.RoleWarrantOfficer,
		Password: "hunter22",
	}))

	user, ok := svc.Authenticate("worf", "hunter22")
	require.True(t, ok)
	require.Equal(t, domain.RoleWarrantOfficer, user.Role)
	require.NotEmpty(t, user.ID)
}

func TestUpsertUser_UpdateKeepsIdentityAndCredentials(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "worf", Name: "Worf", Role: domain.RoleViewer, Password: "hunter22",
	}))
	before, ok := svc.Authenticate("worf", "hunter22")
	require.True(t, ok)

	// Role change with no password keeps the stored salt/hash and id.
	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "worf", Name: "Worf", Role: domain.RoleInvestigator,
	}))
	after, ok := svc.Authenticate("worf", "hunter22")
	require.True(t, ok)
	require.Equal(t, before.ID, after.ID)
	require.Equal(t, domain.RoleInvestigator, after.Role)
}

func TestUpsertUser_PasswordChangeRotatesSalt(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "worf", Role: domain.RoleViewer, Password: "old-pass-1",
	}))
	saltBefore := findRecord(t, svc, "worf").Salt

	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "worf", Role: domain.RoleViewer, Password: "new-pass-2",
	}))
	require.NotEqual(t, saltBefore, findRecord(t, svc, "worf").Salt)

	_, ok := svc.Authenticate("worf", "old-pass-1")
	require.False(t, ok)
	_, ok = svc.Authenticate("worf", "new-pass-2")
	require.True(t, ok)
}

func TestDeleteUser_UnknownFails(t *testing.T) {
	svc, _ := newService(t)
	require.ErrorIs(t, svc.DeleteUser("ghost"), domain.ErrUnknownUser)
}

func TestDeleteUser_LastAdminIsProtected(t *testing.T) {
	svc, _ := newService(t)

	err := svc.DeleteUser("admin")
	require.ErrorIs(t, err, domain.ErrLastAdmin)
	require.Len(t, svc.ListUsers(), 2)

	// With a second admin present the first can go.
	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "admin2", Role: domain.RoleAdmin, Password: "pw", FullAccess: true,
	}))
	require.NoError(t, svc.DeleteUser("admin"))

	_, ok := svc.Authenticate("admin", "admin123")
	require.False(t, ok)
	_, ok = svc.Authenticate("admin2", "pw")
	require.True(t, ok)
}

func TestService_StateSurvivesRestart(t *testing.T) {
	svc, dir := newService(t)
	require.NoError(t, svc.UpsertUser(domain.Upsert{
		Username: "worf", Role: domain.RoleWarrantOfficer, Password: "hunter22",
	}))

	reopened := openService(t, dir)
	user, ok := reopened.Authenticate("worf", "hunter22")
	require.True(t, ok)
	require.Equal(t, domain.RoleWarrantOfficer, user.Role)
	require.Len(t, reopened.ListUsers(), 3)
}

func findRecord(t *testing.T, svc *auth.Service, username string) domain.UserRecord {
	t.Helper()
	for _, record := range svc.ListUsers() {
		if record.Username == username {
			return record
		}
	}
	t.Fatalf("record %q not found", username)
	return domain.UserRecord{}
}
