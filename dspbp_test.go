package dspbp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspbp/dspbp/model"
	"github.com/dspbp/dspbp/payload"
	"github.com/dspbp/dspbp/record"
)

func fixture() *Blueprint {
	return &Blueprint{
		Layout:      1,
		GameVersion: "0.9.27.14394",
		Data: record.BlueprintData{
			Buildings: []record.Building{
				{
					Header: record.Header{ItemID: uint16(model.ConveyorBeltMKI), ParameterCount: 1},
					Param:  &payload.Belt{Entries: []payload.BeltEntry{{Present: true, ItemID: uint16(model.ConveyorBeltMKI)}}},
				},
				{
					Header: record.Header{ItemID: uint16(model.ConveyorBeltMKI), ParameterCount: 1},
					Param:  &payload.Belt{Entries: []payload.BeltEntry{{Present: true, ItemID: uint16(model.ConveyorBeltMKI)}}},
				},
			},
		},
	}
}

func TestParseEmit_RoundTrip(t *testing.T) {
	b := fixture()

	s, err := Emit(b)
	require.NoError(t, err)

	got, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, b.Data, got.Data)
}

func TestEdit_ReplaceBuildingThenStats(t *testing.T) {
	b := fixture()

	err := Edit(b, EditParams{
		Buildings: map[model.Item]model.Item{model.ConveyorBeltMKI: model.ConveyorBeltMKIII},
	})
	require.NoError(t, err)

	stats := Stats(b)
	require.Equal(t, 0, stats[model.ConveyorBeltMKI])
	require.Equal(t, 2, stats[model.ConveyorBeltMKIII])
}

func TestEdit_IncompatibleReplacementPropagates(t *testing.T) {
	b := fixture()

	err := Edit(b, EditParams{
		Buildings: map[model.Item]model.Item{model.ConveyorBeltMKI: model.PlanetaryLogisticsStation},
	})
	require.Error(t, err)
}
