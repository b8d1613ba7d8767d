package marina

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
		want Boat
	}{
		{
			name: "slip",
			line: "Brandy,20,slip,121,31.50\n",
			want: brandy(),
		},
		{
			name: "land",
			line: "Moby Dick,32,land,C,0.00",
			want: NewBoat("Moby Dick", Ft(32), LandLocation{Bay: 'C'}, USD(0)),
		},
		{
			name: "trailer",
			line: "Big Brother,30,TRAILOR,BRO123,1234.56\r\n",
			want: NewBoat("Big Brother", Ft(30), TrailerLocation{Tag: "BRO123"}, USD(1234.56)),
		},
		{
			name: "storage",
			line: "Wet Dream,25,storage,7,12.00",
			want: NewBoat("Wet Dream", Ft(25), StorageLocation{Number: 7}, USD(12)),
		},
		{
			name: "unknown kind is storage",
			line: "Drifter,18,dock,9,0.00",
			want: NewBoat("Drifter", Ft(18), StorageLocation{Number: 9}, USD(0)),
		},
		{
			name: "amount runs to the end of line",
			line: "Brandy,20,slip,121,31.50,paid in cash",
			want: brandy(),
		},
		{
			name: "unreadable numbers are zero",
			line: "Ghost,long,slip,none,lots",
			want: NewBoat("Ghost", Ft(0), SlipLocation{Number: 0}, USD(0)),
		},
		{
			name: "fractional length is kept in memory",
			line: "Half,20.5,slip,1,0",
			want: NewBoat("Half", Ft(20.5), SlipLocation{Number: 1}, USD(0)),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLine(tc.line)
			if err != nil {
				t.Fatalf("ParseLine(%q) unexpected error: %v", tc.line, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s\ngot %v", tc.line, diff, got)
			}
		})
	}
}

func TestParseLine_Malformed(t *testing.T) {
	lines := []string{
		"",
		"Brandy",
		"Brandy,20,slip,121",
		",20,slip,121,31.50",
		"Bay,20,land,,0.00",
	}
	for _, line := range lines {
		_, err := ParseLine(line)
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("ParseLine(%q) error = %v, want ErrMalformedLine", line, err)
		}
	}
}

func TestFormatLine(t *testing.T) {
	testCases := []struct {
		boat Boat
		want string
	}{
		{brandy(), "Brandy,20,slip,121,31.50\n"},
		{NewBoat("Moby Dick", Ft(32), LandLocation{Bay: 'C'}, USD(0)), "Moby Dick,32,land,C,0.00\n"},
		{NewBoat("Big Brother", Ft(30), TrailerLocation{Tag: "BRO123"}, USD(1234.567)), "Big Brother,30,trailor,BRO123,1234.57\n"},
		{NewBoat("Wet Dream", Ft(25.4), StorageLocation{Number: 7}, USD(-2)), "Wet Dream,25,storage,7,-2.00\n"},
	}
	for _, tc := range testCases {
		if got := FormatLine(tc.boat); got != tc.want {
			t.Errorf("FormatLine(%v) = %q, want %q", tc.boat, got, tc.want)
		}
	}
}

// Numbers beyond the range of a double saturate, as atof would, instead of
// being written out digit by digit.
func TestFormatLine_HugeNumbers(t *testing.T) {
	maxDouble := "17976931348623157" + strings.Repeat("0", 292)
	testCases := []struct {
		line string
		want string
	}{
		{"Big,1e30000000,slip,1,1e30000000", "Big," + maxDouble + ",slip,1," + maxDouble + ".00\n"},
		{"Debt,20,slip,1,-1e30000000", "Debt,20,slip,1,-" + maxDouble + ".00\n"},
		{"Tiny,1e-30000000,slip,1,1e-30000000", "Tiny,0,slip,1,0.00\n"},
	}
	for _, tc := range testCases {
		b, err := ParseLine(tc.line)
		if err != nil {
			t.Fatalf("ParseLine(%q) unexpected error: %v", tc.line, err)
		}
		if got := FormatLine(b); got != tc.want {
			t.Errorf("FormatLine(ParseLine(%q)) = %.40q... (%d bytes), want %d bytes", tc.line, got, len(got), len(tc.want))
		}
	}
}

// A land bay that is not valid UTF-8 is written back as read.
func TestFormatLine_Latin1Bay(t *testing.T) {
	line := "X,10,land,\xff,0"
	b, err := ParseLine(line)
	if err != nil {
		t.Fatalf("ParseLine(%q) unexpected error: %v", line, err)
	}
	if want := "X,10,land,\xff,0.00\n"; FormatLine(b) != want {
		t.Errorf("FormatLine(ParseLine(%q)) = %q, want %q", line, FormatLine(b), want)
	}
}

func TestFormatLine_RoundTrip(t *testing.T) {
	boats := []Boat{
		brandy(),
		NewBoat("Moby Dick", Ft(32), LandLocation{Bay: 'C'}, USD(0)),
		NewBoat("Big Brother", Ft(30), TrailerLocation{Tag: "BRO123"}, USD(1234.56)),
		NewBoat("Wet Dream", Ft(25), StorageLocation{Number: 7}, USD(-2)),
		NewBoat("Spaces are fine", Ft(0), TrailerLocation{Tag: ""}, USD(0.01)),
	}
	for _, b := range boats {
		got, err := ParseLine(FormatLine(b))
		if err != nil {
			t.Fatalf("ParseLine(FormatLine(%v)) unexpected error: %v", b, err)
		}
		if diff := cmp.Diff(b, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

// The length is persisted in whole feet: a fraction of a foot does not survive a round trip.
func TestFormatLine_RoundTrip_LosesFractionalFeet(t *testing.T) {
	b := NewBoat("Half", Ft(20.6), SlipLocation{Number: 1}, USD(10))
	got, err := ParseLine(FormatLine(b))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.Length.Equal(Ft(21)) {
		t.Errorf("length = %v, want 21", got.Length)
	}
	// every other field survives
	got.Length = b.Length
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadBoats(t *testing.T) {
	input := "Brandy,20,slip,121,31.50\n\nbroken\nMoby Dick,32,land,C,0.00\n"
	boats, err := ReadBoats(strings.NewReader(input))
	var lerr *LineError
	if !errors.As(err, &lerr) || lerr.Line != 3 {
		t.Errorf("ReadBoats() error = %v, want line 3 skipped", err)
	}
	if errors.Is(err, ErrIO) {
		t.Errorf("ReadBoats() error = %v, must not be fatal", err)
	}
	want := []Boat{brandy(), NewBoat("Moby Dick", Ft(32), LandLocation{Bay: 'C'}, USD(0))}
	if diff := cmp.Diff(want, boats); diff != "" {
		t.Errorf("ReadBoats() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeBoats(t *testing.T) {
	var buf bytes.Buffer
	boats := []Boat{brandy(), NewBoat("Moby Dick", Ft(32), LandLocation{Bay: 'C'}, USD(0))}
	if err := EncodeBoats(&buf, boats); err != nil {
		t.Fatalf("EncodeBoats() unexpected error: %v", err)
	}
	want := "Brandy,20,slip,121,31.50\nMoby Dick,32,land,C,0.00\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeBoats() = %q, want %q", got, want)
	}
}
