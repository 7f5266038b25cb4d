package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thdihan/rangva-server/internal/database/models"
	"github.com/thdihan/rangva-server/internal/database/query"
	"github.com/thdihan/rangva-server/internal/database/repository"
)

func newAdminFixture(t *testing.T) (AdminService, UserService, repository.UserRepository) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	userService := NewUserService(userRepo, adminRepo, repository.NewDoctorRepository(db), nil, testLogger())
	return NewAdminService(adminRepo, testLogger()), userService, userRepo
}

func TestAdminService_Update(t *testing.T) {
	adminService, userService, _ := newAdminFixture(t)

	created, err := userService.CreateAdmin(adminInput("admin@example.com"))
	require.NoError(t, err)

	name := "Renamed Admin"
	contact := "0987654321"
	updated, err := adminService.Update(created.ID, UpdateAdminInput{Name: &name, ContactNumber: &contact})
	require.NoError(t, err)
	assert.Equal(t, "Renamed Admin", updated.Name)
	assert.Equal(t, "0987654321", updated.ContactNumber)

	_, err = adminService.Update("missing-id", UpdateAdminInput{Name: &name})
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}

func TestAdminService_SoftDelete(t *testing.T) {
	adminService, userService, userRepo := newAdminFixture(t)

	created, err := userService.CreateAdmin(adminInput("admin@example.com"))
	require.NoError(t, err)

	_, err = adminService.SoftDelete(created.ID)
	require.NoError(t, err)

	// The profile drops out of reads; the identity row stays but is DELETED.
	_, err = adminService.Get(created.ID)
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)

	user, err := userRepo.FindByEmail("admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.StatusDeleted, user.Status)

	_, err = adminService.SoftDelete(created.ID)
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
}

func TestAdminService_Delete(t *testing.T) {
	adminService, userService, userRepo := newAdminFixture(t)

	created, err := userService.CreateAdmin(adminInput("admin@example.com"))
	require.NoError(t, err)

	deleted, err := adminService.Delete(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	// Both rows are gone.
	_, err = adminService.Get(created.ID)
	assert.ErrorIs(t, err, repository.ErrAdminNotFound)
	_, err = userRepo.FindByEmail("admin@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAdminService_ListExcludesSoftDeleted(t *testing.T) {
	adminService, userService, _ := newAdminFixture(t)

	first, err := userService.CreateAdmin(adminInput("first@example.com"))
	require.NoError(t, err)
	_, err = userService.CreateAdmin(adminInput("second@example.com"))
	require.NoError(t, err)

	_, err = adminService.SoftDelete(first.ID)
	require.NoError(t, err)

	opts := query.FormatOptions(query.RawOptions{})
	admins, total, err := adminService.List(map[string]string{}, opts)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, admins, 1)
	assert.Equal(t, "second@example.com", admins[0].Email)

	admins, total, err = adminService.List(map[string]string{"searchTerm": "second"}, opts)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, admins, 1)
}
