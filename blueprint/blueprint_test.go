package blueprint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dspbp/dspbp/model"
	"github.com/dspbp/dspbp/payload"
	"github.com/dspbp/dspbp/record"
)

func sampleBlueprint(gameVersion string) *Blueprint {
	return &Blueprint{
		Layout:      10,
		Icons:       [5]uint32{500, 0, 0, 0, 0},
		Timestamp:   1234567890,
		GameVersion: gameVersion,
		IconText:    "",
		Desc:        "a%20blueprint",
		Data: record.BlueprintData{
			Version:        1,
			PrimaryAreaIdx: 0,
			Areas: []record.Area{
				{Index: 0, ParentIndex: -1, Width: 200, Height: 200},
			},
			Buildings: []record.Building{
				{
					Header: record.Header{
						Index:          0,
						ItemID:         uint16(model.ConveyorBeltMKI),
						ModelIndex:     1,
						ParameterCount: 2,
					},
					Param: &payload.Belt{Entries: []payload.BeltEntry{
						{Present: true, ItemID: uint16(model.ConveyorBeltMKI)},
						{},
					}},
				},
				{
					Header: record.Header{
						Index:          1,
						IsV2:           true,
						RawSentinel:    -100,
						ItemID:         uint16(model.PlanetaryLogisticsStation),
						Tilt:           1.5,
						ParameterCount: 36, // 12 slots x 2 words + 3 storage bays x 4 words
					},
					Param: &payload.Station{
						Interstellar: false,
						Slots:        make([]payload.StationSlot, 12),
						Storage:      make([]payload.StationStore, 3),
					},
				},
			},
		},
	}
}

func TestParse_RoundTrip(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")

	s, err := Emit(b)
	require.NoError(t, err)

	got, err := Parse(s)
	require.NoError(t, err)
	require.Equal(t, b.Layout, got.Layout)
	require.Equal(t, b.Icons, got.Icons)
	require.Equal(t, b.GameVersion, got.GameVersion)
	require.Equal(t, b.Data, got.Data)

	s2, err := Emit(got)
	require.NoError(t, err)

	got2, err := Parse(s2)
	require.NoError(t, err)
	require.Equal(t, got.Data, got2.Data)
}

func TestParse_CsvVariantDeterminism(t *testing.T) {
	v1, err := Emit(sampleBlueprint("0.9.27.14394"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(v1, "BLUEPRINT:0,"))

	v10, err := Emit(sampleBlueprint("0.10.30.22239"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(v10, "BLUEPRINT:1,"))
}

func TestParse_V2HeaderPreservesSentinelAndTilt(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")

	s, err := Emit(b)
	require.NoError(t, err)

	got, err := Parse(s)
	require.NoError(t, err)

	station := got.Data.Buildings[1]
	require.True(t, station.Header.IsV2)
	require.EqualValues(t, -100, station.Header.RawSentinel)
	require.InDelta(t, 1.5, station.Header.Tilt, 0.0001)

	belt := got.Data.Buildings[0]
	require.False(t, belt.Header.IsV2)
	require.Zero(t, belt.Header.Tilt)
}

func TestSetIcons_RejectsOutOfRangeSlot(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")

	err := b.SetIcons(IconSlot{Slot: 5, Value: 1001})
	require.Error(t, err)

	err = b.SetIcons(IconSlot{Slot: 0, Value: 500})
	require.NoError(t, err)
	require.Equal(t, uint32(500), b.Icons[0])
}

func TestStats_CountsByItem(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")

	stats := b.Stats()
	require.Equal(t, 1, stats[model.ConveyorBeltMKI])
	require.Equal(t, 1, stats[model.PlanetaryLogisticsStation])
}

func TestDescription_DecodesURLEncoding(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")

	desc, err := b.Description()
	require.NoError(t, err)
	require.Equal(t, "a blueprint", desc)

	b.SetDescription("hello world")
	require.Equal(t, "hello+world", b.Desc)
}

func TestParseRaw_ReturnsDecompressedBytes(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")

	s, err := Emit(b)
	require.NoError(t, err)

	got, raw, err := ParseRaw(s)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	require.Equal(t, b.Data, got.Data)
}

func TestParse_StrictUnknownItemCategory(t *testing.T) {
	b := sampleBlueprint("0.9.27.14394")
	b.Data.Buildings = []record.Building{
		{
			Header: record.Header{ItemID: 1, ParameterCount: 1},
			Param:  &payload.Unknown{Words: []uint32{7}},
		},
	}

	s, err := Emit(b)
	require.NoError(t, err)

	_, err = Parse(s, WithStrict(true))
	require.Error(t, err)

	_, err = Parse(s)
	require.NoError(t, err)
}
