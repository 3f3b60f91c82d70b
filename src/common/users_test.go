package common

import (
	"testing"

	"vrs/src/types"

	"github.com/stretchr/testify/assert"
)

func TestListUsers(t *testing.T) {
	d := setupTestDB(t)
	createTestUser(t, d, "alice@example.com", types.ROLE_CUSTOMER)
	createTestUser(t, d, "admin@example.com", types.ROLE_ADMIN)

	users, err := ListUsers()
	assert.Nil(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "alice@example.com", users[0].Email)
}

func TestUpdateUser(t *testing.T) {
	d := setupTestDB(t)
	user := createTestUser(t, d, "alice@example.com", types.ROLE_CUSTOMER)
	createTestUser(t, d, "taken@example.com", types.ROLE_CUSTOMER)

	name := "Alice"
	role := "admin"
	updated, err := UpdateUser(user.ID, types.UpdateUserRequestBody{
		Name: &name,
		Role: &role,
	}, types.ROLE_CUSTOMER)
	assert.Nil(t, err)
	assert.Equal(t, "Alice", updated.Name)
	// Role changes require an admin requester.
	assert.Equal(t, string(types.ROLE_CUSTOMER), updated.Role)

	updated, err = UpdateUser(user.ID, types.UpdateUserRequestBody{Role: &role}, types.ROLE_ADMIN)
	assert.Nil(t, err)
	assert.Equal(t, string(types.ROLE_ADMIN), updated.Role)

	email := "Taken@Example.com"
	_, err = UpdateUser(user.ID, types.UpdateUserRequestBody{Email: &email}, types.ROLE_CUSTOMER)
	assert.Equal(t, types.ERR_CONFLICT, types.KindOf(err))

	fresh := "Fresh@Example.com"
	updated, err = UpdateUser(user.ID, types.UpdateUserRequestBody{Email: &fresh}, types.ROLE_CUSTOMER)
	assert.Nil(t, err)
	assert.Equal(t, "fresh@example.com", updated.Email)
}

func TestDeleteUserBlockedByActiveBooking(t *testing.T) {
	d := setupTestDB(t)
	user := createTestUser(t, d, "alice@example.com", types.ROLE_CUSTOMER)
	vehicle := createTestVehicle(t, d, "KA-01-1234", 100, types.VEHICLE_BOOKED)
	booking := createTestBooking(t, d, user.ID, vehicle.ID, date(2024, 6, 1), date(2024, 6, 3), types.BOOKING_ACTIVE)

	err := DeleteUser(user.ID)
	assert.Equal(t, types.ERR_FAILED_PRECONDITION, types.KindOf(err))

	_, err = UpdateBookingStatus(booking.ID, types.BOOKING_CANCELLED, user.ID, types.ROLE_CUSTOMER, date(2024, 5, 1))
	assert.Nil(t, err)

	assert.Nil(t, DeleteUser(user.ID))
	_, err = GetUser(user.ID)
	assert.Equal(t, types.ERR_NOT_FOUND, types.KindOf(err))

	assert.Equal(t, types.ERR_NOT_FOUND, types.KindOf(DeleteUser(999)))
}
