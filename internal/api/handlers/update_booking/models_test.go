package update_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WeddingBooking/pkg/ptr"
)

func TestToServiceRequest(t *testing.T) {
	req, err := (&UpdateBookingRequest{
		ShootingDate: ptr.Ptr("2024-02-10"),
		ShootingTime: ptr.Ptr("09:30"),
		Deposit:      ptr.Ptr(2500000.0),
	}).ToServiceRequest()
	require.NoError(t, err)

	require.NotNil(t, req.ShootingDateTime)
	assert.Equal(t, "2024-02-10T02:30:00Z", req.ShootingDateTime.UTC().Format("2006-01-02T15:04:05Z07:00"))
	require.NotNil(t, req.Deposit)
	assert.Equal(t, "2500000", req.Deposit.String())
	assert.Nil(t, req.Price)
	assert.Nil(t, req.CustomerName)
}

func TestToServiceRequest_PartialDateTime(t *testing.T) {
	_, err := (&UpdateBookingRequest{ShootingDate: ptr.Ptr("2024-02-10")}).ToServiceRequest()
	assert.ErrorIs(t, err, errPartialDateTime)

	_, err = (&UpdateBookingRequest{ShootingDate: ptr.Ptr("2024-02-30"), ShootingTime: ptr.Ptr("09:00")}).ToServiceRequest()
	assert.Error(t, err)
}
