package model

import (
	"fmt"
	"strings"

	"eduai/internal/errors"
)

// Max speed bounds accepted on plan templates.
const (
	MinPlanSpeed = 0.5
	MaxPlanSpeed = 3.0
)

// MaxStoredSpeed is the largest max_speed the decimal(5,2) column holds.
const MaxStoredSpeed = 999.99

// Features is the set of automation toggles granted to a user, either as a
// plan template or as a user's effective entitlement.
type Features struct {
	CanAutoClick   bool    `json:"can_auto_click" gorm:"column:can_auto_click;not null"`
	CanAutoPlay    bool    `json:"can_auto_play" gorm:"column:can_auto_play;not null"`
	CanChangeSpeed bool    `json:"can_change_speed" gorm:"column:can_change_speed;not null"`
	CanMute        bool    `json:"can_mute" gorm:"column:can_mute;not null"`
	MaxSpeed       float64 `json:"max_speed" gorm:"column:max_speed;type:decimal(5,2);not null"`
}

// DefaultFeatures is applied when a plan has no template.
var DefaultFeatures = Features{
	CanAutoClick:   false,
	CanAutoPlay:    false,
	CanChangeSpeed: false,
	CanMute:        true,
	MaxSpeed:       1.0,
}

// Field names one writable entitlement column.
type Field string

const (
	FieldCanAutoClick   Field = "can_auto_click"
	FieldCanAutoPlay    Field = "can_auto_play"
	FieldCanChangeSpeed Field = "can_change_speed"
	FieldCanMute        Field = "can_mute"
	FieldMaxSpeed       Field = "max_speed"
	FieldIsAdmin        Field = "is_admin"
)

// FeatureFields is the write order used when a whole template is applied.
var FeatureFields = []Field{
	FieldCanAutoClick,
	FieldCanAutoPlay,
	FieldCanChangeSpeed,
	FieldCanMute,
	FieldMaxSpeed,
}

var fieldAliases = map[string]Field{
	"canautoclick":   FieldCanAutoClick,
	"canautoplay":    FieldCanAutoPlay,
	"canchangespeed": FieldCanChangeSpeed,
	"canmute":        FieldCanMute,
	"maxspeed":       FieldMaxSpeed,
	"isadmin":        FieldIsAdmin,
}

// ParseField resolves a wire name to a Field. Both snake_case and the legacy
// run-together spelling are accepted.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldCanAutoClick, FieldCanAutoPlay, FieldCanChangeSpeed, FieldCanMute, FieldMaxSpeed, FieldIsAdmin:
		return f, nil
	}
	if f, ok := fieldAliases[strings.ToLower(name)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", errors.ErrInvalidField, name)
}

// Column is the database column backing the field.
func (f Field) Column() string {
	return string(f)
}

// IsNumeric reports whether the field holds a number rather than a flag.
func (f Field) IsNumeric() bool {
	return f == FieldMaxSpeed
}

// FieldUpdate is a type-checked single-column write.
type FieldUpdate struct {
	Field  Field
	Flag   bool
	Number float64
}

// Value returns the value to persist.
func (u FieldUpdate) Value() interface{} {
	if u.Field.IsNumeric() {
		return u.Number
	}
	return u.Flag
}

// ParseFieldUpdate validates a (name, value) pair as decoded from JSON.
// max_speed takes a number in [0, MaxStoredSpeed], every other field a boolean.
func ParseFieldUpdate(name string, value interface{}) (FieldUpdate, error) {
	field, err := ParseField(name)
	if err != nil {
		return FieldUpdate{}, err
	}

	if field.IsNumeric() {
		n, ok := toNumber(value)
		if !ok || n < 0 {
			return FieldUpdate{}, errors.InvalidValue("max_speed must be a number >= 0")
		}
		if n > MaxStoredSpeed {
			return FieldUpdate{}, errors.InvalidValue(fmt.Sprintf("max_speed must be at most %.2f", MaxStoredSpeed))
		}
		return FieldUpdate{Field: field, Number: n}, nil
	}

	b, ok := value.(bool)
	if !ok {
		return FieldUpdate{}, errors.InvalidValue(fmt.Sprintf("%s must be a boolean", field))
	}
	return FieldUpdate{Field: field, Flag: b}, nil
}

// Update returns the write that sets field to the template's value.
func (f Features) Update(field Field) FieldUpdate {
	switch field {
	case FieldCanAutoClick:
		return FieldUpdate{Field: field, Flag: f.CanAutoClick}
	case FieldCanAutoPlay:
		return FieldUpdate{Field: field, Flag: f.CanAutoPlay}
	case FieldCanChangeSpeed:
		return FieldUpdate{Field: field, Flag: f.CanChangeSpeed}
	case FieldCanMute:
		return FieldUpdate{Field: field, Flag: f.CanMute}
	default:
		return FieldUpdate{Field: FieldMaxSpeed, Number: f.MaxSpeed}
	}
}

// Apply sets the field on the user in memory.
func (u FieldUpdate) Apply(user *User) {
	switch u.Field {
	case FieldCanAutoClick:
		user.Entitlement.CanAutoClick = u.Flag
	case FieldCanAutoPlay:
		user.Entitlement.CanAutoPlay = u.Flag
	case FieldCanChangeSpeed:
		user.Entitlement.CanChangeSpeed = u.Flag
	case FieldCanMute:
		user.Entitlement.CanMute = u.Flag
	case FieldMaxSpeed:
		user.Entitlement.MaxSpeed = u.Number
	case FieldIsAdmin:
		user.IsAdmin = u.Flag
	}
}

func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
