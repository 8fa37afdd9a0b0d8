package session

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Header is the first line of every record log and export file.
const Header = "session_id,user_id,date,start_time,end_time,duration_minutes,active_minutes,idle_minutes,keyboard_events,mouse_events,productivity_percentage,notes,tags"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	recordFields = 13
)

// Record serializes the session as one log line. Commas in notes are
// replaced with semicolons (lossy), tags are joined with "|".
func (s *Session) Record() string {
	end := ""
	if !s.EndTime.IsZero() {
		end = s.EndTime.Format(timeLayout)
	}
	notes := strings.ReplaceAll(s.Notes, ",", ";")
	tags := strings.Join(s.Tags, "|")

	return fmt.Sprintf("%s,%s,%s,%s,%s,%d,%d,%d,%d,%d,%.2f,%s,%s",
		s.ID.String(),
		s.UserID,
		s.Date.Format(dateLayout),
		s.StartTime.Format(timeLayout),
		end,
		s.DurationMinutes(),
		s.ActiveMinutes(),
		s.IdleTimeMinutes,
		s.KeyboardEvents,
		s.MouseEvents,
		s.ProductivityPercent(),
		notes,
		tags,
	)
}

// ParseRecord reconstructs a session from one log line. The stored
// productivity_percentage is ignored; it is always recomputed from the
// reconstructed times and idle minutes.
func ParseRecord(line string) (*Session, error) {
	fields := strings.Split(line, ",")
	if len(fields) < recordFields {
		return nil, fmt.Errorf("record has %d fields, want %d", len(fields), recordFields)
	}

	id, err := uuid.Parse(fields[0])
	if err != nil {
		return nil, fmt.Errorf("invalid session id %q: %w", fields[0], err)
	}
	date, err := time.ParseInLocation(dateLayout, fields[2], time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", fields[2], err)
	}
	start, err := time.Parse(timeLayout, fields[3])
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q: %w", fields[3], err)
	}

	s := &Session{
		ID:        id,
		UserID:    fields[1],
		Date:      date,
		StartTime: atTimeOfDay(date, start),
	}

	if fields[4] != "" {
		end, err := time.Parse(timeLayout, fields[4])
		if err != nil {
			return nil, fmt.Errorf("invalid end time %q: %w", fields[4], err)
		}
		s.EndTime = atTimeOfDay(date, end)
		// session crossed midnight
		if s.EndTime.Before(s.StartTime) {
			s.EndTime = s.EndTime.Add(24 * time.Hour)
		}
	}

	s.IdleTimeMinutes = atoi(fields[7])
	s.KeyboardEvents = atoi(fields[8])
	s.MouseEvents = atoi(fields[9])
	s.Notes = fields[11]
	for _, tag := range strings.Split(fields[12], "|") {
		if tag != "" {
			s.Tags = append(s.Tags, tag)
		}
	}

	return s, nil
}

// atTimeOfDay places a clock-only timestamp onto the given calendar day.
func atTimeOfDay(day, clock time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, day.Location())
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
