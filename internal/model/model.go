package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// DateLayout is the wire format of due dates (calendar date, no time).
const DateLayout = "2006-01-02"

var (
	ErrEmptyTitle  = errors.New("title must not be empty")
	ErrInvalidDate = errors.New("due date must be YYYY-MM-DD")
)

type Task struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
}

// DescriptionText returns the description or "" when unset.
func (t Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}

// Due parses the due date. ok is false when the task has no (valid) due date.
func (t Task) Due() (time.Time, bool) {
	if t.DueDate == nil || strings.TrimSpace(*t.DueDate) == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(*t.DueDate), time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Clone returns a deep copy so snapshots never alias live pointers.
func (t Task) Clone() Task {
	out := t
	if t.Description != nil {
		d := *t.Description
		out.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	return out
}

// Draft holds the user-entered fields of the add and edit forms.
type Draft struct {
	Title       string
	Description string
	DueDate     string
}

// Normalize trims the draft and validates it.
func (d Draft) Normalize() (Draft, error) {
	out := Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		DueDate:     strings.TrimSpace(d.DueDate),
	}
	if out.Title == "" {
		return out, ErrEmptyTitle
	}
	if out.DueDate != "" {
		if _, err := time.Parse(DateLayout, out.DueDate); err != nil {
			return out, ErrInvalidDate
		}
	}
	return out, nil
}

// CreateRequest is the POST /tasks body.
type CreateRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
}

// CreateRequest builds the create body for a normalized draft.
func (d Draft) CreateRequest() CreateRequest {
	desc := d.Description
	return CreateRequest{
		Title:       d.Title,
		Description: &desc,
		DueDate:     optionalString(d.DueDate),
	}
}

// EditPatch builds the PATCH body used when saving the edit form: every
// editable field is sent, an empty due date clears it.
func (d Draft) EditPatch() Patch {
	title := d.Title
	desc := d.Description
	return Patch{
		Title:       &title,
		Description: Field[string]{Set: true, Value: &desc},
		DueDate:     Field[string]{Set: true, Value: optionalString(d.DueDate)},
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Field is a patch value that distinguishes "absent" from "set to null".
type Field[T any] struct {
	Set   bool
	Value *T
}

// Patch is a partial task update. Unset fields are left untouched.
type Patch struct {
	Title       *string
	Description Field[string]
	DueDate     Field[string]
	Completed   *bool
}

func CompletedPatch(completed bool) Patch {
	return Patch{Completed: &completed}
}

func (p Patch) IsEmpty() bool {
	return p.Title == nil && !p.Description.Set && !p.DueDate.Set && p.Completed == nil
}

// Apply returns t with the patch fields applied.
func (p Patch) Apply(t Task) Task {
	out := t.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description.Set {
		out.Description = cloneString(p.Description.Value)
	}
	if p.DueDate.Set {
		out.DueDate = cloneString(p.DueDate.Value)
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func (p Patch) MarshalJSON() ([]byte, error) {
	m := map[string]any{}
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Description.Set {
		m["description"] = p.Description.Value
	}
	if p.DueDate.Set {
		m["due_date"] = p.DueDate.Value
	}
	if p.Completed != nil {
		m["completed"] = *p.Completed
	}
	return json.Marshal(m)
}

func (p *Patch) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*p = Patch{}
	for k, v := range raw {
		isNull := bytes.Equal(bytes.TrimSpace(v), []byte("null"))
		switch k {
		case "title":
			if isNull {
				return errors.New("title must not be null")
			}
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return err
			}
			p.Title = &s
		case "description":
			f, err := decodeField(v, isNull)
			if err != nil {
				return err
			}
			p.Description = f
		case "due_date":
			f, err := decodeField(v, isNull)
			if err != nil {
				return err
			}
			p.DueDate = f
		case "completed":
			if isNull {
				continue
			}
			var c bool
			if err := json.Unmarshal(v, &c); err != nil {
				return err
			}
			p.Completed = &c
		}
	}
	return nil
}

func decodeField(v json.RawMessage, isNull bool) (Field[string], error) {
	if isNull {
		return Field[string]{Set: true}, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return Field[string]{}, err
	}
	return Field[string]{Set: true, Value: &s}, nil
}
