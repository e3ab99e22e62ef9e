// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cubeai/bubix/ent/parentpromptrecord"
)

// ParentPromptRecord is the model entity for the ParentPromptRecord schema.
type ParentPromptRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Parent profile that sent the message
	ParentID string `json:"parent_id,omitempty"`
	// Target child, when the message concerns one
	ChildID string `json:"child_id,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// AiResponse holds the value of the "ai_response" field.
	AiResponse string `json:"ai_response,omitempty"`
	// Classifier category, e.g. PARENT_WISHES
	PromptType string `json:"prompt_type,omitempty"`
	// PROCESSED, PENDING or FAILED
	Status       string `json:"status,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ParentPromptRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case parentpromptrecord.FieldID, parentpromptrecord.FieldSequence:
			values[i] = new(sql.NullInt64)
		case parentpromptrecord.FieldParentID, parentpromptrecord.FieldChildID, parentpromptrecord.FieldAccountID, parentpromptrecord.FieldContent, parentpromptrecord.FieldAiResponse, parentpromptrecord.FieldPromptType, parentpromptrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case parentpromptrecord.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ParentPromptRecord fields.
func (_m *ParentPromptRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case parentpromptrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case parentpromptrecord.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case parentpromptrecord.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case parentpromptrecord.FieldParentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = value.String
			}
		case parentpromptrecord.FieldChildID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field child_id", values[i])
			} else if value.Valid {
				_m.ChildID = value.String
			}
		case parentpromptrecord.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case parentpromptrecord.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case parentpromptrecord.FieldAiResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ai_response", values[i])
			} else if value.Valid {
				_m.AiResponse = value.String
			}
		case parentpromptrecord.FieldPromptType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_type", values[i])
			} else if value.Valid {
				_m.PromptType = value.String
			}
		case parentpromptrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ParentPromptRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ParentPromptRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ParentPromptRecord.
// Note that you need to call ParentPromptRecord.Unwrap() before calling this method if this ParentPromptRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ParentPromptRecord) Update() *ParentPromptRecordUpdateOne {
	return NewParentPromptRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ParentPromptRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ParentPromptRecord) Unwrap() *ParentPromptRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ParentPromptRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ParentPromptRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ParentPromptRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("parent_id=")
	builder.WriteString(_m.ParentID)
	builder.WriteString(", ")
	builder.WriteString("child_id=")
	builder.WriteString(_m.ChildID)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("ai_response=")
	builder.WriteString(_m.AiResponse)
	builder.WriteString(", ")
	builder.WriteString("prompt_type=")
	builder.WriteString(_m.PromptType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteByte(')')
	return builder.String()
}

// ParentPromptRecords is a parsable slice of ParentPromptRecord.
type ParentPromptRecords []*ParentPromptRecord
