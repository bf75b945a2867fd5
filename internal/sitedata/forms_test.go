package sitedata

import (
	"reflect"
	"testing"

	"mohsin_travel/internal/adapters/apiclient"
)

func TestSplitLines(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"a\nb", []string{"a", "b"}},
		{"  a  \n\n b\n", []string{"a", "b"}},
	}
	for _, tc := range cases {
		if got := SplitLines(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("SplitLines(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLinesRoundTrip(t *testing.T) {
	items := []string{"Umrah Visa Processing", "Return Economy Flights", "Airport Transfers"}
	got := SplitLines(JoinLines(items))
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip changed values: %v", got)
	}
}

func TestParagraphsRoundTrip(t *testing.T) {
	paragraphs := Defaults().AboutContent.Paragraphs
	got := SplitParagraphs(JoinParagraphs(paragraphs))
	if !reflect.DeepEqual(got, paragraphs) {
		t.Fatalf("round trip changed values: %v", got)
	}
}

func TestParseBusinessHours(t *testing.T) {
	in := "Monday - Saturday|10:00 AM - 7:00 PM\n\nSunday|Closed\nHolidays"
	want := []apiclient.BusinessHour{
		{Day: "Monday - Saturday", Hours: "10:00 AM - 7:00 PM"},
		{Day: "Sunday", Hours: "Closed"},
		{Day: "Holidays", Hours: ""},
	}
	if got := ParseBusinessHours(in); !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseBusinessHours = %+v, want %+v", got, want)
	}
}

func TestBusinessHoursRoundTrip(t *testing.T) {
	hours := Defaults().SiteSettings.BusinessHours
	got := ParseBusinessHours(FormatBusinessHours(hours))
	if !reflect.DeepEqual(got, hours) {
		t.Fatalf("round trip changed values: %+v", got)
	}
}
