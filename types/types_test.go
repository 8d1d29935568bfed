package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicks(t *testing.T) {
	var testCases = []struct {
		description string
		time        time.Time
		expect      int64
	}{
		{
			description: "epoch",
			time:        time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC),
			expect:      0,
		},
		{
			description: "unix epoch",
			time:        time.Unix(0, 0).UTC(),
			expect:      621355968000000000,
		},
		{
			description: "millisecond precision",
			time:        time.Date(2000, 1, 2, 3, 4, 5, 6_000_000, time.UTC),
			expect:      630823790450060000,
		},
		{
			description: "wall clock of non utc location",
			time:        time.Date(2000, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("", 3600)),
			expect:      630823790450060000,
		},
	}
	for _, testCase := range testCases {
		actual := TicksOf(testCase.time)
		assert.EqualValues(t, testCase.expect, actual, testCase.description)
		restored := FromTicks(actual, testCase.time.Location())
		assert.True(t, restored.Equal(testCase.time), testCase.description)
	}
}

func TestFromTicks_PreEpoch(t *testing.T) {
	source := time.Date(1900, 5, 6, 7, 8, 9, 123456700, time.UTC)
	restored := FromTicks(TicksOf(source), time.UTC)
	assert.True(t, source.Equal(restored), restored.String())
}

func TestDateKind(t *testing.T) {
	assert.Equal(t, UTC, KindOf(time.Now().UTC()))
	assert.Equal(t, Local, KindOf(time.Now()))
	assert.Equal(t, Unspecified, KindOf(time.Now().In(time.FixedZone("X", 7200))))
	kind, err := ParseDateKind("utc")
	require.NoError(t, err)
	assert.Equal(t, UTC, kind)
	text, err := Local.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Local", string(text))
	_, err = ParseDateKind("Mars")
	assert.Error(t, err)
	assert.Equal(t, UnspecifiedLocation, Unspecified.Location())
}

func TestOffsetTime(t *testing.T) {
	zone := time.FixedZone("CET", 3600)
	source := time.Date(2021, 3, 4, 5, 6, 7, 800_000_000, zone)
	offsetTime := NewOffsetTime(source)
	assert.Equal(t, time.Hour, offsetTime.Offset())
	restored := OffsetTimeFromTicks(TicksOf(source), offsetTime.Offset())
	assert.True(t, restored.Equal(offsetTime))
	zero := OffsetTimeFromTicks(TicksOf(source), 0)
	assert.EqualValues(t, 0, zero.Offset())
}

func TestVersion(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      Version
		expectError bool
	}{
		{description: "major minor", text: "1.2", expect: Version{1, 2, -1, -1}},
		{description: "build", text: "1.2.3", expect: Version{1, 2, 3, -1}},
		{description: "revision", text: "1.2.3.4", expect: Version{1, 2, 3, 4}},
		{description: "single", text: "1", expectError: true},
		{description: "negative", text: "1.-2", expectError: true},
		{description: "too many", text: "1.2.3.4.5", expectError: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseVersion(testCase.text)
		if testCase.expectError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		assert.Equal(t, testCase.text, actual.String(), testCase.description)
	}
}

func TestGUIDFormats(t *testing.T) {
	id := uuid.MustParse("aa23d7c6-bd69-45cd-9890-600aa448638a")
	var expect = map[GUIDFormat]string{
		GUIDDashed:           "aa23d7c6-bd69-45cd-9890-600aa448638a",
		GUIDDigits:           "aa23d7c6bd6945cd9890600aa448638a",
		GUIDBraces:           "{aa23d7c6-bd69-45cd-9890-600aa448638a}",
		GUIDParentheses:      "(aa23d7c6-bd69-45cd-9890-600aa448638a)",
		GUIDHex:              "{0xaa23d7c6,0xbd69,0x45cd,{0x98,0x90,0x60,0x0a,0xa4,0x48,0x63,0x8a}}",
		GUIDDashedUpper:      "AA23D7C6-BD69-45CD-9890-600AA448638A",
		GUIDDigitsUpper:      "AA23D7C6BD6945CD9890600AA448638A",
		GUIDBracesUpper:      "{AA23D7C6-BD69-45CD-9890-600AA448638A}",
		GUIDParenthesesUpper: "(AA23D7C6-BD69-45CD-9890-600AA448638A)",
		GUIDHexUpper:         "{0XAA23D7C6,0XBD69,0X45CD,{0X98,0X90,0X60,0X0A,0XA4,0X48,0X63,0X8A}}",
	}
	for _, format := range GUIDFormats {
		text := FormatGUID(id, format)
		assert.Equal(t, expect[format], text, format.String())
		parsed, err := ParseGUID(text, format)
		require.NoError(t, err, format.String())
		assert.Equal(t, id, parsed, format.String())
		parsed, err = ParseAnyGUID(text)
		require.NoError(t, err, format.String())
		assert.Equal(t, id, parsed, format.String())
	}
	_, err := ParseGUID(FormatGUID(id, GUIDDigits), GUIDDashed)
	assert.Error(t, err)
}

func TestGUIDFormats_Random(t *testing.T) {
	for _, format := range GUIDFormats {
		id := uuid.New()
		parsed, err := ParseGUID(FormatGUID(id, format), format)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestParseGUIDFormat(t *testing.T) {
	format, err := ParseGUIDFormat("X")
	require.NoError(t, err)
	assert.Equal(t, GUIDHexUpper, format)
	_, err = ParseGUIDFormat("z")
	assert.Error(t, err)
}

func TestParseDuration(t *testing.T) {
	var testCases = []struct {
		description string
		text        string
		expect      time.Duration
		expectError bool
	}{
		{description: "go duration", text: "1h30m", expect: 90 * time.Minute},
		{description: "clock", text: "01:02:03", expect: time.Hour + 2*time.Minute + 3*time.Second},
		{description: "days", text: "2.01:00:00", expect: 49 * time.Hour},
		{description: "fraction", text: "00:00:01.5", expect: 1500 * time.Millisecond},
		{description: "negative", text: "-00:01:00", expect: -time.Minute},
		{description: "days only", text: "3", expect: 72 * time.Hour},
		{description: "hours minutes", text: "10:20", expect: 10*time.Hour + 20*time.Minute},
		{description: "invalid minutes", text: "00:61:00", expectError: true},
		{description: "garbage", text: "abc", expectError: true},
	}
	for _, testCase := range testCases {
		actual, err := ParseDuration(testCase.text)
		if testCase.expectError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestFormatClockDuration(t *testing.T) {
	d := 26*time.Hour + 3*time.Minute + 4*time.Second + 500*time.Millisecond
	text := FormatClockDuration(d)
	assert.Equal(t, "1.02:03:04.5000000", text)
	parsed, err := ParseClockDuration(text)
	require.NoError(t, err)
	assert.Equal(t, d, parsed)
	assert.Equal(t, "-00:00:01", FormatClockDuration(-time.Second))
}
