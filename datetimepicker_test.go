package datetimepicker

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	_ "time/tzdata"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

var testSuffixes = map[Field]string{
	FieldYear:   "y",
	FieldMonth:  "m",
	FieldDay:    "d",
	FieldHour:   "h",
	FieldMinute: "min",
}

// testArg undoes the spelling of times in directive arguments, which cannot
// contain ':'; 08h30 stands for 08:30.
func testArg(s string) string {
	return strings.ReplaceAll(s, "h", ":")
}

func testBound(t *testing.T, s string) time.Time {
	v, err := ParseValue(TypeDateTime, testArg(s))
	require.NoError(t, err)
	return v.Time(time.UTC)
}

func testInt(t *testing.T, s string) int {
	n, err := strconv.Atoi(s)
	require.NoError(t, err)
	return n
}

// testConfig builds a Config from the arguments of a test directive. Unknown
// arguments are returned for the caller to handle.
func testConfig(t *testing.T, d *datadriven.TestData) (Config, map[string]string) {
	cfg := Config{
		Type:      TypeDateTime,
		MinDate:   testBound(t, "2020-01-01"),
		MaxDate:   testBound(t, "2030-12-31"),
		MaxHour:   23,
		MaxMinute: 59,
		Location:  time.UTC,
	}
	rest := map[string]string{}
	for _, arg := range d.CmdArgs {
		val := ""
		if len(arg.Vals) > 0 {
			val = arg.Vals[0]
		}
		switch arg.Key {
		case "type":
			typ, err := ParseType(val)
			require.NoError(t, err)
			cfg.Type = typ
		case "min":
			cfg.MinDate = testBound(t, val)
		case "max":
			cfg.MaxDate = testBound(t, val)
		case "min_hour":
			cfg.MinHour = testInt(t, val)
		case "max_hour":
			cfg.MaxHour = testInt(t, val)
		case "min_minute":
			cfg.MinMinute = testInt(t, val)
		case "max_minute":
			cfg.MaxMinute = testInt(t, val)
		case "filter":
			require.Equal(t, "quarter", val)
			cfg.Filter = func(f Field, values []string) []string {
				if f != FieldMinute {
					return values
				}
				var ret []string
				for _, v := range values {
					if n, _ := strconv.Atoi(v); n%15 == 0 {
						ret = append(ret, v)
					}
				}
				return ret
			}
		case "formatter":
			require.Equal(t, "suffix", val)
			cfg.Formatter = func(f Field, value string) string {
				return value + testSuffixes[f]
			}
		default:
			rest[arg.Key] = val
		}
	}
	return cfg, rest
}

func TestRanges(t *testing.T) {
	datadriven.RunTest(t, "testdata/ranges", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "ranges":
			cfg, rest := testConfig(t, d)
			require.Empty(t, rest)
			v, err := ParseValue(cfg.Type, strings.TrimSpace(d.Input))
			require.NoError(t, err)
			ret := []string{}
			for _, r := range BuildRanges(cfg, v) {
				ret = append(ret, r.String())
			}
			return strings.Join(ret, "\n")
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		return ""
	})
}

func TestColumns(t *testing.T) {
	datadriven.RunTest(t, "testdata/columns", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "columns":
			cfg, rest := testConfig(t, d)
			require.Empty(t, rest)
			v, err := ParseValue(cfg.Type, strings.TrimSpace(d.Input))
			require.NoError(t, err)
			cols := BuildColumns(cfg, v)
			require.Len(t, cols.Display, len(cols.Origin))

			var b strings.Builder
			for _, view := range []struct {
				name string
				cols []Column
			}{
				{"origin", cols.Origin},
				{"display", cols.Display},
			} {
				b.WriteString(view.name + "\n")
				for _, col := range view.cols {
					fmt.Fprintf(&b, "%s: %s\n", col.Field, strings.Join(col.Values, " "))
				}
			}
			return b.String()
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		return ""
	})
}

func TestCorrect(t *testing.T) {
	datadriven.RunTest(t, "testdata/correct", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "correct":
			cfg, rest := testConfig(t, d)
			require.Empty(t, rest)
			ret := []string{}
			for _, line := range strings.Split(strings.TrimSpace(d.Input), "\n") {
				v := CorrectString(cfg, line)
				require.Equal(t, v, Correct(cfg, v), "correction of %s is not idempotent", line)
				ret = append(ret, fmt.Sprintf("%s -> %s", line, v.Format(cfg.Type)))
			}
			return strings.Join(ret, "\n")
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		return ""
	})
}

func TestSelect(t *testing.T) {
	datadriven.RunTest(t, "testdata/select", func(t *testing.T, d *datadriven.TestData) string {
		switch d.Cmd {
		case "select":
			cfg, rest := testConfig(t, d)
			current, err := ParseValue(cfg.Type, testArg(rest["value"]))
			require.NoError(t, err)
			var indexes []int
			for _, s := range strings.Split(rest["indexes"], ",") {
				indexes = append(indexes, testInt(t, s))
			}
			format := cfg.Type
			if s, ok := rest["format"]; ok {
				format, err = ParseType(s)
				require.NoError(t, err)
			}
			cols := BuildColumns(cfg, Correct(cfg, current))
			return MapSelection(cfg, current, indexes, cols.Origin).Format(format)
		default:
			t.Fatalf("command unknown: %s", d.Cmd)
		}
		return ""
	})
}

func TestFormat(t *testing.T) {
	v := Value{Year: 987, Month: time.March, Day: 4, Hour: 5, Minute: 6}
	for _, tc := range []struct {
		typ      Type
		expected string
	}{
		{TypeDateTime, "0987-03-04 05:06"},
		{TypeDate, "0987-03-04"},
		{TypeYearMonth, "0987-03"},
		{TypeTime, "05:06"},
	} {
		t.Run(tc.typ.String(), func(t *testing.T) {
			require.Equal(t, tc.expected, Format(tc.typ, v))
		})
	}
	require.Equal(t, "0987-03-04 05:06", v.String())
}

func TestParseType(t *testing.T) {
	for _, typ := range allTypes {
		parsed, err := ParseType(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}
	_, err := ParseType("week")
	require.EqualError(t, err, `unknown picker type "week"`)
}

func TestConfigValidate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, tc := range []struct {
		desc   string
		mutate func(*Config)
		err    string
	}{
		{desc: "defaults", mutate: func(*Config) {}},
		{
			desc: "inverted dates",
			mutate: func(c *Config) {
				c.MinDate, c.MaxDate = c.MaxDate, c.MinDate
			},
			err: "min date 2034-12-31 00:00 is after max date 2014-01-01 00:00",
		},
		{
			desc:   "missing max date",
			mutate: func(c *Config) { c.MaxDate = time.Time{} },
			err:    "datetime picker requires both a min and a max date",
		},
		{
			desc: "inverted hours",
			mutate: func(c *Config) {
				c.Type = TypeTime
				c.MinHour, c.MaxHour = 18, 9
			},
			err: "invalid hour bounds [18, 9]",
		},
		{
			desc: "minute past the hour",
			mutate: func(c *Config) {
				c.Type = TypeTime
				c.MaxMinute = 60
			},
			err: "invalid minute bounds [0, 60]",
		},
		{
			desc:   "unknown type",
			mutate: func(c *Config) { c.Type = Type(42) },
			err:    "unknown picker type 42",
		},
		{
			desc: "bounds within the same minute",
			mutate: func(c *Config) {
				c.MinDate = time.Date(2020, 1, 15, 8, 30, 30, 0, time.UTC)
				c.MaxDate = time.Date(2020, 1, 15, 8, 30, 45, 0, time.UTC)
			},
			err: "min date 2020-01-15 08:31 is after max date 2020-01-15 08:30",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := DefaultConfig(TypeDateTime, now)
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.err == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.err)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig(TypeDate, now)
	require.Equal(t, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), cfg.MinDate)
	require.Equal(t, time.Date(2034, 12, 31, 0, 0, 0, 0, time.UTC), cfg.MaxDate)
	require.Equal(t, 23, cfg.MaxHour)
	require.Equal(t, 59, cfg.MaxMinute)
	require.NoError(t, cfg.Validate())
}

func TestValueTimeSkipsDSTGap(t *testing.T) {
	// Clocks in Sao Paulo jumped from 00:00 to 01:00 on 2018-11-04.
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	v := Value{Year: 2018, Month: time.November, Day: 4, Minute: 30}
	require.Equal(t, Value{Year: 2018, Month: time.November, Day: 4, Hour: 1, Minute: 30}, ValueOf(v.Time(loc)))

	// Times outside the gap are untouched.
	v.Hour = 2
	require.Equal(t, v, ValueOf(v.Time(loc)))

	cfg := DefaultConfig(TypeDateTime, time.Date(2018, time.June, 1, 12, 0, 0, 0, loc))
	require.Equal(t, "2018-11-04 01:30", Correct(cfg, Value{Year: 2018, Month: time.November, Day: 4, Minute: 30}).String())
	require.Equal(t, "2018-11-04", CorrectString(Config{
		Type:     TypeDate,
		MinDate:  cfg.MinDate,
		MaxDate:  cfg.MaxDate,
		Location: loc,
	}, "2018-11-04").Format(TypeDate))
}

func TestMaterializeWithoutFormatter(t *testing.T) {
	cols := Materialize([]FieldRange{{Field: FieldHour, Low: 9, High: 11}}, nil, nil)
	require.Equal(t, cols.Origin, cols.Display)

	cols.Display[0].Values[0] = "nine"
	require.Equal(t, []string{"09", "10", "11"}, cols.Origin[0].Values)
}
