package services

import (
	"context"
	"testing"

	"github.com/csestrada2005/puebla-barf-connect-sub001/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubZoneFinder struct {
	zones map[string]*model.Zone
}

func (s *stubZoneFinder) FindByPostalCode(_ context.Context, pc string) (*model.Zone, error) {
	return s.zones[pc], nil
}

func TestCoverageCheck(t *testing.T) {
	svc := NewCoverageService(&stubZoneFinder{zones: map[string]*model.Zone{
		"72810": {ZoneID: 1, Name: "Angelópolis", DeliveryDay: "miércoles", Fee: 0},
	}})

	res, err := svc.Check(context.Background(), "72810")
	require.NoError(t, err)
	assert.True(t, res.Covered)
	require.NotNil(t, res.Zone)
	assert.Equal(t, "Angelópolis", res.Zone.Name)

	res, err = svc.Check(context.Background(), "99999")
	require.NoError(t, err)
	assert.False(t, res.Covered)
	assert.Nil(t, res.Zone)
}

func TestCoverageCheckRejectsBadPostalCodes(t *testing.T) {
	svc := NewCoverageService(&stubZoneFinder{})

	for _, pc := range []string{"", "1234", "123456", "72a10"} {
		_, err := svc.Check(context.Background(), pc)
		assert.Error(t, err, pc)
	}
}
