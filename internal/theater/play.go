package theater

// PlayType is the closed set of play genres the pricing engine understands.
type PlayType string

const (
	Tragedy PlayType = "tragedy"
	Comedy  PlayType = "comedy"
)

// ParsePlayType converts raw catalog data into a PlayType.
func ParsePlayType(value string) (PlayType, error) {
	switch PlayType(value) {
	case Tragedy:
		return Tragedy, nil
	case Comedy:
		return Comedy, nil
	default:
		return "", &UnknownPlayTypeError{Type: value}
	}
}

func (t PlayType) String() string {
	return string(t)
}

// UnmarshalText rejects unknown play types while decoding.
func (t *PlayType) UnmarshalText(text []byte) error {
	parsed, err := ParsePlayType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t PlayType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// Play is catalog reference data for a single production.
type Play struct {
	Name string   `json:"name" validate:"required"`
	Type PlayType `json:"type" validate:"required"`
}

// Performance is one invoice line: a play staged for an audience.
type Performance struct {
	PlayID   string `json:"playID" validate:"required"`
	Audience int    `json:"audience" validate:"min=0"`
}

// Invoice lists the performances billed to a customer, in statement order.
type Invoice struct {
	Customer     string        `json:"customer" validate:"required"`
	Performances []Performance `json:"performances" validate:"dive"`
}

// Catalog maps play IDs to plays.
type Catalog map[string]Play

// Lookup resolves a play by ID.
func (c Catalog) Lookup(playID string) (Play, error) {
	play, ok := c[playID]
	if !ok {
		return Play{}, &UnknownPlayError{PlayID: playID}
	}
	return play, nil
}
