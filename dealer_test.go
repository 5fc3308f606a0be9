package dealerscout_test

import (
	"testing"

	"github.com/jmalczyk/dealerscout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealer_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid dealer", func(t *testing.T) {
		t.Parallel()

		d := &dealerscout.Dealer{PlaceID: "p1", Name: "Valley Auto Sales"}

		assert.NoError(t, d.Validate())
	})

	t.Run("missing place ID", func(t *testing.T) {
		t.Parallel()

		d := &dealerscout.Dealer{Name: "Valley Auto Sales"}

		err := d.Validate()
		require.Error(t, err)
		assert.Equal(t, dealerscout.EINVALID, dealerscout.ErrorCode(err))
	})

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		d := &dealerscout.Dealer{PlaceID: "p1"}

		err := d.Validate()
		require.Error(t, err)
		assert.Equal(t, dealerscout.EINVALID, dealerscout.ErrorCode(err))
	})
}

func TestDealerSet_Add_DeduplicatesByPlaceID(t *testing.T) {
	t.Parallel()

	set := dealerscout.NewDealerSet()

	overwrote := set.Add(&dealerscout.Dealer{PlaceID: "p1", Name: "First Name", Phone: "555-0100"})
	assert.False(t, overwrote)

	overwrote = set.Add(&dealerscout.Dealer{PlaceID: "p1", Name: "Second Name", Phone: "555-0200"})
	assert.True(t, overwrote)

	require.Equal(t, 1, set.Len())

	// Last write wins.
	dealers := set.Dealers()
	require.Len(t, dealers, 1)
	assert.Equal(t, "Second Name", dealers[0].Name)
	assert.Equal(t, "555-0200", dealers[0].Phone)
}

func TestDealerSet_Dealers_SortedByName(t *testing.T) {
	t.Parallel()

	set := dealerscout.NewDealerSet()
	set.Add(&dealerscout.Dealer{PlaceID: "p2", Name: "Zephyr Motors"})
	set.Add(&dealerscout.Dealer{PlaceID: "p3", Name: "Apex Auto"})
	set.Add(&dealerscout.Dealer{PlaceID: "p1", Name: "Midway Cars"})

	dealers := set.Dealers()

	require.Len(t, dealers, 3)
	assert.Equal(t, "Apex Auto", dealers[0].Name)
	assert.Equal(t, "Midway Cars", dealers[1].Name)
	assert.Equal(t, "Zephyr Motors", dealers[2].Name)
}

func TestDealerSet_Empty(t *testing.T) {
	t.Parallel()

	set := dealerscout.NewDealerSet()

	assert.Zero(t, set.Len())
	assert.Empty(t, set.Dealers())
}
