package builtin

import (
	"strings"
	"time"

	"github.com/dws-sandbox/basicscript/internal/procedures"
	"github.com/dws-sandbox/basicscript/internal/values"
)

// RegisterDateTime registers the Date/Time category: Now/Date/Time,
// component extraction, DateAdd/DateDiff/DatePart, DateSerial/TimeSerial,
// DateValue/TimeValue, MonthName/WeekdayName and Timer.
func RegisterDateTime(r *procedures.Registry) {
	def := func(name string, fn procedures.Builtin) {
		r.Define(&procedures.Descriptor{Name: name, Kind: procedures.Function, Fn: fn})
	}
	def("Now", builtinNow)
	def("Date", builtinDate)
	def("Time", builtinTime)
	def("Timer", builtinTimer)
	def("Year", dateComponent(func(t time.Time) int32 { return int32(t.Year()) }))
	def("Month", dateComponent(func(t time.Time) int32 { return int32(t.Month()) }))
	def("Day", dateComponent(func(t time.Time) int32 { return int32(t.Day()) }))
	def("Hour", dateComponent(func(t time.Time) int32 { return int32(t.Hour()) }))
	def("Minute", dateComponent(func(t time.Time) int32 { return int32(t.Minute()) }))
	def("Second", dateComponent(func(t time.Time) int32 { return int32(t.Second()) }))
	def("Weekday", dateComponent(func(t time.Time) int32 { return int32(t.Weekday()) + 1 }))
	def("DateAdd", builtinDateAdd)
	def("DateDiff", builtinDateDiff)
	def("DatePart", builtinDatePart)
	def("DateSerial", builtinDateSerial)
	def("TimeSerial", builtinTimeSerial)
	def("DateValue", builtinDateValue)
	def("TimeValue", builtinTimeValue)
	def("MonthName", builtinMonthName)
	def("WeekdayName", builtinWeekdayName)
}

// startTime anchors Timer, which reports the seconds elapsed since this
// process started (not since midnight); set once at process start since
// built-ins carry no per-interpreter state.
var startTime = rngStartTime()

func rngStartTime() time.Time { return time.Now() }

func builtinNow(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Now", args, 0); err != nil {
		return nil, err
	}
	return values.DateValue{Value: time.Now()}, nil
}

func builtinDate(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Date", args, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	return values.DateValue{Value: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())}, nil
}

func builtinTime(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Time", args, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	return values.DateValue{Value: time.Date(1899, time.December, 30, now.Hour(), now.Minute(), now.Second(), 0, now.Location())}, nil
}

func builtinTimer(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("Timer", args, 0); err != nil {
		return nil, err
	}
	return values.DoubleValue{Value: time.Since(startTime).Seconds()}, nil
}

func dateComponent(fn func(time.Time) int32) procedures.Builtin {
	return func(args []values.Value, _ []*values.Value) (values.Value, error) {
		if err := exactly("date component function", args, 1); err != nil {
			return nil, err
		}
		t, err := values.ToDate(args[0])
		if err != nil {
			return nil, typeMismatch("%s", err.Error())
		}
		return values.LongValue{Value: fn(t)}, nil
	}
}

// addInterval advances t by n units of the interval-code string DateAdd
// accepts, using calendar arithmetic since months and years aren't fixed
// durations.
func addInterval(interval string, n int, t time.Time) (time.Time, error) {
	switch strings.ToLower(interval) {
	case "yyyy":
		return t.AddDate(n, 0, 0), nil
	case "q":
		return t.AddDate(0, n*3, 0), nil
	case "m":
		return t.AddDate(0, n, 0), nil
	case "y", "d":
		return t.AddDate(0, 0, n), nil
	case "w":
		return t.AddDate(0, 0, n), nil
	case "ww":
		return t.AddDate(0, 0, n*7), nil
	case "h":
		return t.Add(time.Duration(n) * time.Hour), nil
	case "n":
		return t.Add(time.Duration(n) * time.Minute), nil
	case "s":
		return t.Add(time.Duration(n) * time.Second), nil
	default:
		return time.Time{}, invalidCall("unrecognized interval %q", interval)
	}
}

func builtinDateAdd(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("DateAdd", args, 3); err != nil {
		return nil, err
	}
	interval, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	n, err := argLong(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	t, err := values.ToDate(args[2])
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	result, err := addInterval(interval, int(n), t)
	if err != nil {
		return nil, err
	}
	return values.DateValue{Value: result}, nil
}

// builtinDateDiff implements DateDiff(interval, date1, date2): the count of
// interval boundaries crossed between date1 and date2.
func builtinDateDiff(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("DateDiff", args, 3); err != nil {
		return nil, err
	}
	interval, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	t1, err := values.ToDate(args[1])
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	t2, err := values.ToDate(args[2])
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	var result int64
	switch strings.ToLower(interval) {
	case "yyyy":
		result = int64(t2.Year() - t1.Year())
	case "q":
		result = int64((t2.Year()-t1.Year())*4 + (int(t2.Month())-int(t1.Month()))/3)
	case "m":
		result = int64((t2.Year()-t1.Year())*12 + int(t2.Month()) - int(t1.Month()))
	case "y", "d":
		result = int64(t2.Sub(t1).Hours() / 24)
	case "w":
		result = int64(t2.Sub(t1).Hours() / 24)
	case "ww":
		result = int64(t2.Sub(t1).Hours() / 24 / 7)
	case "h":
		result = int64(t2.Sub(t1).Hours())
	case "n":
		result = int64(t2.Sub(t1).Minutes())
	case "s":
		result = int64(t2.Sub(t1).Seconds())
	default:
		return nil, invalidCall("unrecognized interval %q", interval)
	}
	return values.LongValue{Value: int32(result)}, nil
}

func builtinDatePart(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("DatePart", args, 2, 4); err != nil {
		return nil, err
	}
	interval, err := argString(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	t, err := values.ToDate(args[1])
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	var result int32
	switch strings.ToLower(interval) {
	case "yyyy":
		result = int32(t.Year())
	case "q":
		result = int32((int(t.Month())-1)/3) + 1
	case "m":
		result = int32(t.Month())
	case "y":
		result = int32(t.YearDay())
	case "d":
		result = int32(t.Day())
	case "w":
		result = int32(t.Weekday()) + 1
	case "ww":
		_, week := t.ISOWeek()
		result = int32(week)
	case "h":
		result = int32(t.Hour())
	case "n":
		result = int32(t.Minute())
	case "s":
		result = int32(t.Second())
	default:
		return nil, invalidCall("unrecognized interval %q", interval)
	}
	return values.LongValue{Value: result}, nil
}

func builtinDateSerial(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("DateSerial", args, 3); err != nil {
		return nil, err
	}
	y, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	m, err := argLong(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	d, err := argLong(args, 2)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DateValue{Value: time.Date(int(y), time.Month(m), int(d), 0, 0, 0, 0, time.UTC)}, nil
}

func builtinTimeSerial(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("TimeSerial", args, 3); err != nil {
		return nil, err
	}
	h, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	n, err := argLong(args, 1)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	s, err := argLong(args, 2)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DateValue{Value: time.Date(1899, time.December, 30, int(h), int(n), int(s), 0, time.UTC)}, nil
}

func builtinDateValue(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("DateValue", args, 1); err != nil {
		return nil, err
	}
	t, err := values.ToDate(args[0])
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DateValue{Value: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}, nil
}

func builtinTimeValue(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := exactly("TimeValue", args, 1); err != nil {
		return nil, err
	}
	t, err := values.ToDate(args[0])
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	return values.DateValue{Value: time.Date(1899, time.December, 30, t.Hour(), t.Minute(), t.Second(), 0, t.Location())}, nil
}

var monthNames = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

func builtinMonthName(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("MonthName", args, 1, 2); err != nil {
		return nil, err
	}
	m, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if m < 1 || m > 12 {
		return nil, invalidCall("MonthName: month %d out of range", m)
	}
	abbreviate, err := optBool(args, 1, false)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	name := monthNames[m-1]
	if abbreviate {
		name = name[:3]
	}
	return values.StringValue{Value: name}, nil
}

var weekdayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func builtinWeekdayName(args []values.Value, _ []*values.Value) (values.Value, error) {
	if err := between("WeekdayName", args, 1, 3); err != nil {
		return nil, err
	}
	w, err := argLong(args, 0)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	if w < 1 || w > 7 {
		return nil, invalidCall("WeekdayName: weekday %d out of range", w)
	}
	abbreviate, err := optBool(args, 1, false)
	if err != nil {
		return nil, typeMismatch("%s", err.Error())
	}
	name := weekdayNames[w-1]
	if abbreviate {
		name = name[:3]
	}
	return values.StringValue{Value: name}, nil
}
